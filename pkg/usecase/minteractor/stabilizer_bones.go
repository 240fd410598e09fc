// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model/merrors"
)

const (
	stabilizerInsertIndex = 1
	stabilizerStage       = "全ての親/センター挿入"
)

// insertStabilizerBones は全ての親とセンターをルート直後へ挿入し、既存参照を振り直す。
// 振り直し表を先に確定させてから一括適用する。ルート直下だった既存ボーンはセンター配下へ付け替える。
func insertStabilizerBones(modelData *ModelData) error {
	if modelData == nil || modelData.Bones == nil || modelData.Bones.Len() == 0 {
		return merrors.NewStructuralError(stabilizerStage, "ルートボーンが存在すること", nil)
	}

	master := model.NewBoneByName(model.ROOT.String())
	master.EnglishName = resolveBoneEnglishName(master.Name())
	master.ParentIndex = 0
	center := model.NewBoneByName(model.CENTER.String())
	center.EnglishName = resolveBoneEnglishName(center.Name())
	center.ParentIndex = stabilizerInsertIndex
	for _, bone := range []*model.Bone{master, center} {
		bone.Position = mmath.ZERO_VEC3
		bone.BoneFlag = model.BONE_FLAG_IS_VISIBLE | model.BONE_FLAG_CAN_MANIPULATE |
			model.BONE_FLAG_CAN_ROTATE | model.BONE_FLAG_CAN_TRANSLATE
	}
	inserted := []*model.Bone{master, center}

	existing := modelData.Bones.Values()
	oldToNew := buildInsertReindex(len(existing), stabilizerInsertIndex, len(inserted))
	applyBoneReindexToModel(existing, modelData.Vertices, oldToNew)
	for i, bone := range existing {
		if i == 0 || bone == nil || bone.ParentIndex != 0 {
			continue
		}
		bone.ParentIndex += len(inserted)
	}
	if err := modelData.Bones.Insert(stabilizerInsertIndex, inserted...); err != nil {
		return merrors.NewStructuralError(stabilizerStage, "挿入位置が有効であること", err)
	}
	logConvertDebug("全ての親/センター挿入完了: bones=%d", modelData.Bones.Len())
	return nil
}
