// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
)

const (
	ikStage             = "IKボーン追加"
	ikLoopCount         = 10
	ikUnitRotationDeg   = 114.5916
	ikKneeMinAngleXDeg  = -180.0
	ikKneeMaxAngleXDeg  = -0.5
	ikBoneFlagBase      = model.BONE_FLAG_IS_VISIBLE | model.BONE_FLAG_CAN_MANIPULATE | model.BONE_FLAG_CAN_ROTATE | model.BONE_FLAG_CAN_TRANSLATE
	ikBoneFlagWithSolve = ikBoneFlagBase | model.BONE_FLAG_IS_IK
)

// ikDirections はIKチェーンを追加する左右の順序。
var ikDirections = []model.BoneDirection{model.BONE_DIRECTION_LEFT, model.BONE_DIRECTION_RIGHT}

// legIkAnchors は片側の足IK生成に必要な既存ボーンを表す。
type legIkAnchors struct {
	Direction model.BoneDirection
	Leg       *model.Bone
	Knee      *model.Bone
	Ankle     *model.Bone
	Toe       *model.Bone
}

// appendIkBones は足IKとつま先IKを左足、右足、左つま先、右つま先の順に追加する。
// 必要なボーンを全て解決してから追加するため、失敗時はボーンを1本も追加しない。
func appendIkBones(modelData *ModelData) error {
	bones := modelData.Bones
	master, err := requireBoneByName(bones, ikStage, model.ROOT.String())
	if err != nil {
		return err
	}
	anchors, err := resolveLegIkAnchors(bones)
	if err != nil {
		return err
	}

	legIkIndexes := make([]int, len(anchors))
	for i, anchor := range anchors {
		ikParent, ikBone := buildLegIkBones(anchor, master.Index(), bones.Len())
		bones.Append(ikParent)
		legIkIndexes[i] = bones.Append(ikBone)
	}
	for i, anchor := range anchors {
		bones.Append(buildToeIkBone(anchor, legIkIndexes[i]))
	}
	logConvertDebug("IKボーン追加完了: bones=%d", bones.Len())
	return nil
}

// resolveLegIkAnchors は左右のIK生成に必要なボーンを全て解決する。
func resolveLegIkAnchors(bones *model.BoneCollection) ([]legIkAnchors, error) {
	anchors := make([]legIkAnchors, 0, len(ikDirections))
	for _, direction := range ikDirections {
		leg, err := requireBoneByName(bones, ikStage, model.LEG.StringFromDirection(direction))
		if err != nil {
			return nil, err
		}
		knee, err := requireBoneByName(bones, ikStage, model.KNEE.StringFromDirection(direction))
		if err != nil {
			return nil, err
		}
		ankle, err := requireBoneByName(bones, ikStage, model.ANKLE.StringFromDirection(direction))
		if err != nil {
			return nil, err
		}
		toe, err := requireBoneByName(bones, ikStage, model.TOE.StringFromDirection(direction))
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, legIkAnchors{
			Direction: direction,
			Leg:       leg,
			Knee:      knee,
			Ankle:     ankle,
			Toe:       toe,
		})
	}
	return anchors, nil
}

// buildLegIkBones は足IK親と足IKを生成する。parentIndex は足IK親が入る位置。
func buildLegIkBones(anchor legIkAnchors, masterIndex int, parentIndex int) (*model.Bone, *model.Bone) {
	ikIndex := parentIndex + 1

	ikParent := model.NewBoneByName(model.LEG_IK_PARENT.StringFromDirection(anchor.Direction))
	ikParent.EnglishName = resolveBoneEnglishName(ikParent.Name())
	ikParent.ParentIndex = masterIndex
	ikParent.Position = mmath.NewVec3(anchor.Ankle.Position.X, 0, anchor.Ankle.Position.Z)
	ikParent.BoneFlag = ikBoneFlagBase
	ikParent.SetTail(model.NewBoneTailToBone(ikIndex))

	ikBone := model.NewBoneByName(model.LEG_IK.StringFromDirection(anchor.Direction))
	ikBone.EnglishName = resolveBoneEnglishName(ikBone.Name())
	ikBone.ParentIndex = parentIndex
	ikBone.Position = anchor.Ankle.Position
	ikBone.BoneFlag = ikBoneFlagWithSolve
	ikBone.Ik = &model.Ik{
		BoneIndex:    anchor.Ankle.Index(),
		LoopCount:    ikLoopCount,
		UnitRotation: mmath.DegToRad(ikUnitRotationDeg),
		Links: []model.IkLink{
			{
				BoneIndex:     anchor.Knee.Index(),
				AngleLimit:    true,
				MinAngleLimit: mmath.NewVec3(mmath.DegToRad(ikKneeMinAngleXDeg), 0, 0),
				MaxAngleLimit: mmath.NewVec3(mmath.DegToRad(ikKneeMaxAngleXDeg), 0, 0),
			},
			{
				BoneIndex: anchor.Leg.Index(),
			},
		},
	}
	return ikParent, ikBone
}

// buildToeIkBone はつま先IKを生成する。
func buildToeIkBone(anchor legIkAnchors, legIkIndex int) *model.Bone {
	bone := model.NewBoneByName(model.TOE_IK.StringFromDirection(anchor.Direction))
	bone.EnglishName = resolveBoneEnglishName(bone.Name())
	bone.ParentIndex = legIkIndex
	bone.Position = anchor.Toe.Position
	bone.BoneFlag = ikBoneFlagWithSolve
	bone.Ik = &model.Ik{
		BoneIndex:    anchor.Toe.Index(),
		LoopCount:    ikLoopCount,
		UnitRotation: mmath.DegToRad(ikUnitRotationDeg),
		Links: []model.IkLink{
			{BoneIndex: anchor.Ankle.Index()},
		},
	}
	return bone
}
