// 指示: miu200521358
package minteractor

import (
	"strings"

	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/source"
)

// movableJointPaths は回転に加えて移動を許可するジョイントパス。
var movableJointPaths = map[string]struct{}{
	"":              {},
	"POSITION":      {},
	"MODEL_00":      {},
	"MODEL_00/BASE": {},
}

// generatedJointParts はランタイムが自動生成する補助ジョイントの名前断片。
var generatedJointParts = []string{
	"__rot",
	"__null",
	"__const",
	"__twist",
	"__slerp",
}

// isGeneratedJointPath は補助ジョイントか判定する。
func isGeneratedJointPath(path string) bool {
	for _, part := range generatedJointParts {
		if strings.Contains(path, part) {
			return true
		}
	}
	return false
}

// resolveJointBoneFlag はジョイントパスからボーンフラグを決める。
func resolveJointBoneFlag(path string) model.BoneFlag {
	flag := model.BONE_FLAG_CAN_MANIPULATE | model.BONE_FLAG_CAN_ROTATE | model.BONE_FLAG_IS_VISIBLE
	if _, ok := movableJointPaths[path]; ok {
		flag |= model.BONE_FLAG_CAN_TRANSLATE
	}
	if isGeneratedJointPath(path) {
		flag &^= model.BONE_FLAG_IS_VISIBLE
	}
	return flag
}

// findSingleDirectChild は補助ジョイントを除いた子が1つだけの場合にそのindexを返す。
func findSingleDirectChild(children []int, joints []source.Joint) (int, bool) {
	found := -1
	for _, childIndex := range children {
		if isGeneratedJointPath(joints[childIndex].Path) {
			continue
		}
		if found >= 0 {
			return -1, false
		}
		found = childIndex
	}
	return found, found >= 0
}

// buildSkeleton はジョイント順を保ったままボーン階層を構築する。
// ボーン位置はローカル変換を順運動学で合成したワールド座標。
func buildSkeleton(avatar *source.SourceAvatar, options ConvertOptions) (*model.BoneCollection, error) {
	joints := avatar.Joints
	parents := avatar.BuildParentIndexes()
	scale := options.unitScale()

	translations := make([]mmath.Vec3, len(joints))
	rotations := make([]mmath.Quaternion, len(joints))
	locals := make([]mmath.Mat4, len(joints))
	for i, joint := range joints {
		translations[i] = convertUnityVectorToPmx(joint.Translation, scale)
		rotations[i] = convertUnityQuaternionToPmx(joint.Rotation)
		locals[i] = mmath.NewTranslationMat4(translations[i]).Muled(rotations[i].ToMat4())
	}
	worlds, err := computeWorldMatrices(parents, locals)
	if err != nil {
		return nil, err
	}
	children := collectChildrenByParent(parents)

	resolver := newBoneNameResolver(options)
	bones := model.NewBoneCollection(len(joints))
	for i, joint := range joints {
		bone := model.NewBoneByName(resolver.resolve(joint.Path))
		bone.EnglishName = resolveBoneEnglishName(bone.Name())
		bone.ParentIndex = parents[i]
		bone.Position = worlds[i].Translation()
		bone.Rotation = rotations[i]
		bone.BoneFlag = resolveJointBoneFlag(joint.Path)
		if childIndex, ok := findSingleDirectChild(children[i], joints); ok {
			bone.SetTail(model.NewBoneTailToBone(childIndex))
		} else {
			bone.SetTail(model.NewBoneTailToOffset(translations[i]))
		}
		bones.Append(bone)
	}
	logConvertDebug("ボーン構築完了: bones=%d", bones.Len())
	return bones, nil
}
