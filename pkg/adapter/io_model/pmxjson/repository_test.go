// 指示: miu200521358
package pmxjson

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/miu200521358/mu_mltd2pmx/pkg/adapter/io_common"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
)

func TestPmxJsonRepositorySave(t *testing.T) {
	modelData := newModelForSaveTest()
	path := filepath.Join(t.TempDir(), "out", "model.pmx.json")
	rep := NewPmxJsonRepository()

	if err := rep.Save(path, modelData); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	doc := ModelDocument{}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("json parse failed: %v", err)
	}
	if doc.Name != "テスト" || len(doc.Bones) != 2 || len(doc.Vertices) != 1 {
		t.Fatalf("document mismatch: name=%s bones=%d vertices=%d", doc.Name, len(doc.Bones), len(doc.Vertices))
	}
	root := doc.Bones[0]
	if root.TailBone == nil || *root.TailBone != 1 || root.TailOffset != nil {
		t.Fatalf("root tail mismatch: %+v", root)
	}
	child := doc.Bones[1]
	if child.TailBone != nil || child.TailOffset == nil || child.TailOffset[1] != 2 {
		t.Fatalf("child tail mismatch: %+v", child)
	}
	if child.Ik == nil || child.Ik.Target != 0 || len(child.Ik.Links) != 1 || child.Ik.Links[0].Min == nil {
		t.Fatalf("ik mismatch: %+v", child.Ik)
	}
	if doc.Vertices[0].DeformType != "BDEF1" || doc.Vertices[0].Bones[0] != 1 {
		t.Fatalf("vertex mismatch: %+v", doc.Vertices[0])
	}
	if len(doc.DisplaySlots) != 1 || !doc.DisplaySlots[0].Special || doc.DisplaySlots[0].References[0].Type != "morph" {
		t.Fatalf("display slot mismatch: %+v", doc.DisplaySlots)
	}
}

func TestPmxJsonRepositorySaveErrors(t *testing.T) {
	rep := NewPmxJsonRepository()
	if err := rep.Save(filepath.Join(t.TempDir(), "model.pmx"), model.NewPmxModel()); !io_common.IsIoErrorKind(err, io_common.IO_ERROR_KIND_EXT_INVALID) {
		t.Fatalf("expected ext invalid: got=%v", err)
	}
	if err := rep.Save(filepath.Join(t.TempDir(), "model.json"), nil); !io_common.IsIoErrorKind(err, io_common.IO_ERROR_KIND_SAVE_FAILED) {
		t.Fatalf("expected save failed: got=%v", err)
	}
}

// newModelForSaveTest は保存検証用のモデルを生成する。
func newModelForSaveTest() *model.PmxModel {
	modelData := model.NewPmxModel()
	modelData.Name = "テスト"

	root := model.NewBoneByName("root")
	root.SetTail(model.NewBoneTailToBone(1))
	modelData.Bones.Append(root)
	child := model.NewBoneByName("child")
	child.ParentIndex = 0
	child.SetTail(model.NewBoneTailToOffset(mmath.NewVec3(0, 2, 0)))
	child.Ik = &model.Ik{
		BoneIndex: 0,
		LoopCount: 10,
		Links: []model.IkLink{
			{BoneIndex: 0, AngleLimit: true, MinAngleLimit: mmath.NewVec3(-1, 0, 0), MaxAngleLimit: mmath.ZERO_VEC3},
		},
	}
	modelData.Bones.Append(child)

	vertex := model.NewVertex()
	vertex.DeformType = model.BDEF1
	vertex.Deform = model.Deform{Indexes: []int{1}, Weights: []float64{1}}
	modelData.Vertices.Append(vertex)

	morph := model.NewMorphByName("あ")
	modelData.Morphs.Append(morph)
	slot := model.NewDisplaySlotByName("表情")
	slot.SpecialFlag = model.SPECIAL_FLAG_ON
	slot.References = append(slot.References, model.Reference{DisplayType: model.DISPLAY_TYPE_MORPH, DisplayIndex: 0})
	modelData.DisplaySlots.Append(slot)
	return modelData
}
