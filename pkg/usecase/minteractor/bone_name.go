// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/source"
	"golang.org/x/text/encoding/japanese"
)

const (
	boneNameMaxBytes       = 15
	boneNameFallbackFormat = "Bone #%08x"
	boneNameMltdRoot       = "ROOT"
	boneNamePosition       = "位置"

	mltdPathBase   = "MODEL_00/BASE"
	mltdPathUpper  = mltdPathBase + "/MUNE1"
	mltdPathUpper2 = mltdPathUpper + "/MUNE2"
	mltdPathNeck   = mltdPathUpper2 + "/KUBI"
	mltdPathLower  = mltdPathBase + "/KOSHI"
)

// mltdFingerSegments は指ジョイント名と対応する準標準ボーンを表す。
var mltdFingerSegments = []struct {
	Segment string
	Bones   [3]model.StandardBoneName
}{
	{Segment: "OYA", Bones: [3]model.StandardBoneName{model.THUMB1, model.THUMB2, model.THUMB3}},
	{Segment: "HITO", Bones: [3]model.StandardBoneName{model.INDEX1, model.INDEX2, model.INDEX3}},
	{Segment: "NAKA", Bones: [3]model.StandardBoneName{model.MIDDLE1, model.MIDDLE2, model.MIDDLE3}},
	{Segment: "KUSU", Bones: [3]model.StandardBoneName{model.RING1, model.RING2, model.RING3}},
	{Segment: "KO", Bones: [3]model.StandardBoneName{model.PINKY1, model.PINKY2, model.PINKY3}},
}

// boneNameByPath はジョイントパスからMMDボーン名への対応を表す。
var boneNameByPath = buildBoneNameByPath()

// boneEnglishByName はMMDボーン名から英名への対応を表す。
var boneEnglishByName = buildBoneEnglishByName()

// standardBoneEnglishTemplates は準標準ボーンの英名テンプレートを表す。
var standardBoneEnglishTemplates = map[model.StandardBoneName]string{
	model.VIEW_CENTER:   "view cnt",
	model.ROOT:          "master",
	model.CENTER:        "center",
	model.GROOVE:        "groove",
	model.WAIST:         "waist",
	model.UPPER:         "upper body",
	model.UPPER2:        "upper body2",
	model.NECK:          "neck",
	model.HEAD:          "head",
	model.LOWER:         "lower body",
	model.SHOULDER:      "shoulder_{Side}",
	model.ARM:           "arm_{Side}",
	model.ELBOW:         "elbow_{Side}",
	model.WRIST:         "wrist_{Side}",
	model.THUMB1:        "thumb1_{Side}",
	model.THUMB2:        "thumb2_{Side}",
	model.THUMB3:        "thumb3_{Side}",
	model.INDEX1:        "fore1_{Side}",
	model.INDEX2:        "fore2_{Side}",
	model.INDEX3:        "fore3_{Side}",
	model.MIDDLE1:       "middle1_{Side}",
	model.MIDDLE2:       "middle2_{Side}",
	model.MIDDLE3:       "middle3_{Side}",
	model.RING1:         "third1_{Side}",
	model.RING2:         "third2_{Side}",
	model.RING3:         "third3_{Side}",
	model.PINKY1:        "little1_{Side}",
	model.PINKY2:        "little2_{Side}",
	model.PINKY3:        "little3_{Side}",
	model.HAND_DUMMY:    "dummy_{Side}",
	model.LEG:           "leg_{Side}",
	model.KNEE:          "knee_{Side}",
	model.ANKLE:         "ankle_{Side}",
	model.TOE:           "toe_{Side}",
	model.LEG_IK_PARENT: "leg IKP_{Side}",
	model.LEG_IK:        "leg IK_{Side}",
	model.TOE_IK:        "toe IK_{Side}",
}

// buildBoneNameByPath はジョイントパス辞書を構築する。
func buildBoneNameByPath() map[string]string {
	out := map[string]string{
		"":                    model.VIEW_CENTER.String(),
		"POSITION":            boneNamePosition,
		"MODEL_00":            model.GROOVE.String(),
		mltdPathBase:          model.WAIST.String(),
		mltdPathUpper:         model.UPPER.String(),
		mltdPathUpper2:        model.UPPER2.String(),
		mltdPathNeck:          model.NECK.String(),
		mltdPathNeck + "/KAO": model.HEAD.String(),
		mltdPathLower:         model.LOWER.String(),
	}
	for _, direction := range []model.BoneDirection{model.BONE_DIRECTION_LEFT, model.BONE_DIRECTION_RIGHT} {
		side := "_" + direction.EnglishSuffix()

		shoulder := mltdPathUpper2 + "/SAKOTSU" + side
		arm := shoulder + "/KATA" + side
		elbow := arm + "/UDE" + side
		wrist := elbow + "/TE" + side
		out[shoulder] = model.SHOULDER.StringFromDirection(direction)
		out[arm] = model.ARM.StringFromDirection(direction)
		out[elbow] = model.ELBOW.StringFromDirection(direction)
		out[wrist] = model.WRIST.StringFromDirection(direction)
		out[wrist+"/DUMMY"+side] = model.HAND_DUMMY.StringFromDirection(direction)
		for _, finger := range mltdFingerSegments {
			path := wrist
			for joint, boneName := range finger.Bones {
				path = fmt.Sprintf("%s/%s%d%s", path, finger.Segment, joint+1, side)
				out[path] = boneName.StringFromDirection(direction)
			}
		}

		leg := mltdPathLower + "/MOMO" + side
		knee := leg + "/HIZA" + side
		ankle := knee + "/ASHI" + side
		out[leg] = model.LEG.StringFromDirection(direction)
		out[knee] = model.KNEE.StringFromDirection(direction)
		out[ankle] = model.ANKLE.StringFromDirection(direction)
		out[ankle+"/TSUMASAKI"+side] = model.TOE.StringFromDirection(direction)
	}
	return out
}

// buildBoneEnglishByName は英名辞書を構築する。
func buildBoneEnglishByName() map[string]string {
	out := map[string]string{boneNamePosition: "position"}
	for standardBoneName, template := range standardBoneEnglishTemplates {
		if strings.Contains(standardBoneName.String(), model.BONE_DIRECTION_PREFIX) {
			for _, direction := range []model.BoneDirection{model.BONE_DIRECTION_LEFT, model.BONE_DIRECTION_RIGHT} {
				out[standardBoneName.StringFromDirection(direction)] = strings.ReplaceAll(template, "{Side}", direction.EnglishSuffix())
			}
			continue
		}
		out[standardBoneName.String()] = template
	}
	return out
}

// resolveBoneEnglishName はボーン名から英名を解決する。辞書に無い場合はボーン名をそのまま使う。
func resolveBoneEnglishName(name string) string {
	if englishName, ok := boneEnglishByName[name]; ok {
		return englishName
	}
	return name
}

// boneNameResolver はジョイントパスから出力ボーン名を決める。
type boneNameResolver struct {
	options ConvertOptions
	used    map[string]int
}

// newBoneNameResolver はボーン名解決器を生成する。
func newBoneNameResolver(options ConvertOptions) *boneNameResolver {
	return &boneNameResolver{options: options, used: map[string]int{}}
}

// resolve はジョイントパスの出力ボーン名を返す。
func (r *boneNameResolver) resolve(path string) string {
	if !r.options.TranslateBoneNames {
		return ensureUniqueBoneName(path, r.used)
	}
	if r.options.SkeletonFormat == SkeletonFormatMltd {
		leaf := source.LeafName(path)
		if leaf == "" {
			leaf = boneNameMltdRoot
		}
		return ensureUniqueBoneName(boundBoneName(leaf), r.used)
	}
	if name, ok := boneNameByPath[path]; ok {
		return ensureUniqueBoneName(name, r.used)
	}
	name := fallbackBoneName(path)
	logConvertDebug("[%s] ボーン名辞書未登録: path=%s name=%s", model.ConvertWarningBoneNameHashFallback, path, name)
	return ensureUniqueBoneName(name, r.used)
}

// fallbackBoneName はパスの安定ハッシュから短いボーン名を作る。
func fallbackBoneName(path string) string {
	return fmt.Sprintf(boneNameFallbackFormat, uint32(xxhash.Sum64String(path)))
}

// boneNameByteLength はShift_JISでのバイト長を返す。符号化できない場合はUTF-8長を返す。
func boneNameByteLength(name string) int {
	encoded, err := japanese.ShiftJIS.NewEncoder().String(name)
	if err != nil {
		return len(name)
	}
	return len(encoded)
}

// boundBoneName はボーン名を最大バイト長に収まるよう末尾から切り詰める。
func boundBoneName(name string) string {
	if boneNameByteLength(name) <= boneNameMaxBytes {
		return name
	}
	runes := []rune(name)
	for len(runes) > 0 && boneNameByteLength(string(runes)) > boneNameMaxBytes {
		runes = runes[:len(runes)-1]
	}
	bounded := string(runes)
	logConvertWarn("[%s] ボーン名を切り詰めました: source=%s name=%s", model.ConvertWarningBoneNameTruncated, name, bounded)
	return bounded
}

// ensureUniqueBoneName は重複しないボーン名を返す。
func ensureUniqueBoneName(name string, used map[string]int) string {
	if used == nil {
		return name
	}
	if _, ok := used[name]; !ok {
		used[name] = 1
		return name
	}
	for {
		index := used[name]
		used[name] = index + 1
		candidate := fmt.Sprintf("%s_%d", name, index)
		if _, exists := used[candidate]; exists {
			continue
		}
		used[candidate] = 1
		return candidate
	}
}
