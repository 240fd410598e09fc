// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model/merrors"
)

// getBoneByName は名前でボーンを取得する。見つからない場合は false を返す。
func getBoneByName(bones *model.BoneCollection, name string) (*model.Bone, bool) {
	if bones == nil {
		return nil, false
	}
	bone, err := bones.GetByName(name)
	if err != nil || bone == nil {
		return nil, false
	}
	return bone, true
}

// requireBoneByName は名前でボーンを取得する。見つからない場合は構造エラーを返す。
func requireBoneByName(bones *model.BoneCollection, stage string, name string) (*model.Bone, error) {
	if bones == nil {
		return nil, merrors.NewStructuralError(stage, "ボーン集合が存在すること", nil)
	}
	bone, err := bones.GetByName(name)
	if err != nil {
		return nil, merrors.NewStructuralError(stage, "必須ボーンが存在すること", err)
	}
	return bone, nil
}

// buildInsertReindex は insertAt へ insertCount 本挿入した場合の旧index→新index表を返す。
func buildInsertReindex(boneCount int, insertAt int, insertCount int) []int {
	oldToNew := make([]int, boneCount)
	for i := range oldToNew {
		if i >= insertAt {
			oldToNew[i] = i + insertCount
			continue
		}
		oldToNew[i] = i
	}
	return oldToNew
}

// applyBoneReindexToModel はボーン参照indexを一括で再マッピングする。
// 対象はボーンの親、表示先、IKターゲットとリンク、頂点ウェイト。
func applyBoneReindexToModel(bones []*model.Bone, vertices *model.VertexCollection, oldToNew []int) {
	if len(oldToNew) == 0 {
		return
	}
	for _, bone := range bones {
		if bone == nil {
			continue
		}
		bone.ParentIndex = remapBoneIndex(bone.ParentIndex, oldToNew)
		if tailIndex, ok := bone.Tail().BoneIndex(); ok {
			remapped := remapBoneIndex(tailIndex, oldToNew)
			if remapped < 0 {
				bone.SetTail(model.NewBoneTailToOffset(mmath.ZERO_VEC3))
			} else {
				bone.SetTail(model.NewBoneTailToBone(remapped))
			}
		}
		if bone.Ik == nil {
			continue
		}
		bone.Ik.BoneIndex = remapBoneIndex(bone.Ik.BoneIndex, oldToNew)
		for i := range bone.Ik.Links {
			bone.Ik.Links[i].BoneIndex = remapBoneIndex(bone.Ik.Links[i].BoneIndex, oldToNew)
		}
	}
	if vertices != nil {
		for _, vertex := range vertices.Values() {
			if vertex == nil {
				continue
			}
			remapBoneDeform(vertex, oldToNew)
		}
	}
}

// remapBoneIndex は再マッピング後のボーンindexを返す。
func remapBoneIndex(index int, oldToNew []int) int {
	if index < 0 {
		return -1
	}
	if index >= len(oldToNew) {
		return -1
	}
	return oldToNew[index]
}

// remapBoneDeform は頂点デフォームのボーンindexを再マッピングする。
// index 0 かつウェイト0以下は未使用スロットとして扱い、書き換えない。
func remapBoneDeform(vertex *model.Vertex, oldToNew []int) {
	for j, index := range vertex.Deform.Indexes {
		if index == 0 && j < len(vertex.Deform.Weights) && vertex.Deform.Weights[j] <= 0 {
			continue
		}
		vertex.Deform.Indexes[j] = remapBoneIndex(index, oldToNew)
	}
}
