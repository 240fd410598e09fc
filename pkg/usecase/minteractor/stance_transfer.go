// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
)

const (
	astanceStage              = "Aスタンス補正"
	astanceRightArmRollDegree = 37.5
	astanceLeftArmRollDegree  = -37.5
)

// astanceBonePose は補正後のボーン姿勢を表す。
type astanceBonePose struct {
	World mmath.Mat4
	Skin  mmath.Mat4
}

// applyAstanceRebase は左右の腕をZ軸回りに回してAスタンスへ補正し、頂点を再スキニングした上で
// 補正後のボーン位置を初期位置として焼き込む。
// 再適用時は前回焼き込んだ姿勢を基準に回転が重なる。
func applyAstanceRebase(bones *model.BoneCollection, vertices *model.VertexCollection) error {
	rightArm, err := requireBoneByName(bones, astanceStage, model.ARM.Right())
	if err != nil {
		return err
	}
	leftArm, err := requireBoneByName(bones, astanceStage, model.ARM.Left())
	if err != nil {
		return err
	}

	rotations := make([]mmath.Quaternion, bones.Len())
	for i := range rotations {
		rotations[i] = mmath.NewQuaternionIdentity()
	}
	rotations[rightArm.Index()] = mmath.NewQuaternionFromDegrees(0, 0, astanceRightArmRollDegree)
	rotations[leftArm.Index()] = mmath.NewQuaternionFromDegrees(0, 0, astanceLeftArmRollDegree)

	poses, err := computeAstanceBonePoses(bones, rotations)
	if err != nil {
		return err
	}
	if vertices != nil {
		for _, vertex := range vertices.Values() {
			applyAstanceVertex(vertex, poses)
		}
	}
	for i, bone := range bones.Values() {
		bone.Position = poses[i].World.Translation()
	}
	logConvertDebug("Aスタンス補正完了: bones=%d", bones.Len())
	return nil
}

// computeAstanceBonePoses は順運動学で各ボーンのワールド行列とスキニング行列を求める。
func computeAstanceBonePoses(bones *model.BoneCollection, rotations []mmath.Quaternion) ([]astanceBonePose, error) {
	values := bones.Values()
	parents := make([]int, len(values))
	locals := make([]mmath.Mat4, len(values))
	for i, bone := range values {
		parents[i] = bone.ParentIndex
		relative := bone.Position
		if parent, err := bones.Get(bone.ParentIndex); err == nil {
			relative = bone.Position.Subed(parent.Position)
		}
		locals[i] = mmath.NewTranslationMat4(relative).Muled(rotations[i].ToMat4())
	}
	worlds, err := computeWorldMatrices(parents, locals)
	if err != nil {
		return nil, err
	}
	poses := make([]astanceBonePose, len(values))
	for i, bone := range values {
		poses[i] = astanceBonePose{
			World: worlds[i],
			Skin:  worlds[i].Muled(mmath.NewTranslationMat4(bone.Position.MuledScalar(-1))),
		}
	}
	return poses, nil
}

// applyAstanceVertex は有効ウェイトのスキニング行列を合成して頂点と法線を変換する。
func applyAstanceVertex(vertex *model.Vertex, poses []astanceBonePose) {
	if vertex == nil {
		return
	}
	blended := mmath.NewZeroMat4()
	hasInfluence := false
	for j := range vertex.Deform.Indexes {
		if !vertex.Deform.IsValidAt(j) {
			continue
		}
		boneIndex := vertex.Deform.Indexes[j]
		if boneIndex >= len(poses) {
			continue
		}
		blended = blended.Added(poses[boneIndex].Skin.MuledScalar(vertex.Deform.Weights[j]))
		hasInfluence = true
	}
	if !hasInfluence {
		return
	}
	vertex.Position = blended.MulPosition(vertex.Position)
	vertex.Normal = blended.MulNormal(vertex.Normal).Normalized()
}
