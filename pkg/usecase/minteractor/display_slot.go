// 指示: miu200521358
package minteractor

import "github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"

// displaySlotDefinition は表示枠の定義を表す。AllMorphs の場合は全モーフを順に登録する。
type displaySlotDefinition struct {
	Name        string
	EnglishName string
	Special     bool
	AllMorphs   bool
	BoneNames   []string
}

// displaySlotDefinitions は出力する表示枠の順序と内容。
var displaySlotDefinitions = buildDisplaySlotDefinitions()

// buildDisplaySlotDefinitions は表示枠定義を構築する。
func buildDisplaySlotDefinitions() []displaySlotDefinition {
	return []displaySlotDefinition{
		{Name: "Root", EnglishName: "Root", Special: true, BoneNames: []string{model.VIEW_CENTER.String()}},
		{Name: "表情", EnglishName: "Facial Expressions", Special: true, AllMorphs: true},
		{Name: "センター", EnglishName: "center", BoneNames: []string{model.ROOT.String(), model.CENTER.String()}},
		{Name: "ＩＫ", EnglishName: "IK", BoneNames: []string{
			model.LEG_IK_PARENT.Left(), model.LEG_IK.Left(), model.TOE_IK.Left(),
			model.LEG_IK_PARENT.Right(), model.LEG_IK.Right(), model.TOE_IK.Right(),
		}},
		{Name: "体(上)", EnglishName: "Upper Body", BoneNames: []string{
			model.UPPER.String(), model.UPPER2.String(), model.NECK.String(), model.HEAD.String(),
		}},
		{Name: "腕", EnglishName: "Arms", BoneNames: bothDirectionBoneNames(
			model.SHOULDER, model.ARM, model.ELBOW, model.WRIST,
		)},
		{Name: "手", EnglishName: "Hands", BoneNames: bothDirectionBoneNames(
			model.THUMB1, model.THUMB2, model.THUMB3,
			model.INDEX1, model.INDEX2, model.INDEX3,
			model.HAND_DUMMY,
			model.MIDDLE1, model.MIDDLE2, model.MIDDLE3,
			model.RING1, model.RING2, model.RING3,
			model.PINKY1, model.PINKY2, model.PINKY3,
		)},
		{Name: "体(下)", EnglishName: "Lower Body", BoneNames: []string{
			model.GROOVE.String(), model.WAIST.String(), model.LOWER.String(),
		}},
		{Name: "足", EnglishName: "Legs", BoneNames: bothDirectionBoneNames(
			model.LEG, model.KNEE, model.ANKLE, model.TOE,
		)},
	}
}

// bothDirectionBoneNames は左側一式、右側一式の順に名前を並べる。
func bothDirectionBoneNames(names ...model.StandardBoneName) []string {
	out := make([]string, 0, len(names)*2)
	for _, direction := range []model.BoneDirection{model.BONE_DIRECTION_LEFT, model.BONE_DIRECTION_RIGHT} {
		for _, name := range names {
			out = append(out, name.StringFromDirection(direction))
		}
	}
	return out
}

// assembleDisplaySlots は確定済みのボーンとモーフから表示枠を生成する。
// 名前解決できない要素は警告を出して除外する。
func assembleDisplaySlots(bones *model.BoneCollection, morphs *model.MorphCollection) *model.DisplaySlotCollection {
	slots := model.NewDisplaySlotCollection(len(displaySlotDefinitions))
	for _, definition := range displaySlotDefinitions {
		slot := model.NewDisplaySlotByName(definition.Name)
		slot.EnglishName = definition.EnglishName
		if definition.Special {
			slot.SpecialFlag = model.SPECIAL_FLAG_ON
		}
		if definition.AllMorphs && morphs != nil {
			for _, morph := range morphs.Values() {
				slot.References = append(slot.References, model.Reference{
					DisplayType:  model.DISPLAY_TYPE_MORPH,
					DisplayIndex: morph.Index(),
				})
			}
		}
		for _, boneName := range definition.BoneNames {
			bone, ok := getBoneByName(bones, boneName)
			if !ok {
				logConvertWarn("[%s] 表示枠要素が見つかりません: slot=%s bone=%s",
					model.ConvertWarningDisplaySlotElementNotFound, definition.Name, boneName)
				continue
			}
			slot.References = append(slot.References, model.Reference{
				DisplayType:  model.DISPLAY_TYPE_BONE,
				DisplayIndex: bone.Index(),
			})
		}
		slots.Append(slot)
	}
	return slots
}
