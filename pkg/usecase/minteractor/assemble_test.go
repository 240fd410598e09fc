// 指示: miu200521358
package minteractor

import (
	"testing"

	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model/merrors"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/source"
)

// convertProgressCollector は進捗イベント収集を表す。
type convertProgressCollector struct {
	events []ConvertProgressEvent
}

// ReportConvertProgress は進捗イベントを収集する。
func (c *convertProgressCollector) ReportConvertProgress(event ConvertProgressEvent) {
	if c == nil {
		return
	}
	c.events = append(c.events, event)
}

// findIndex は指定種別イベントの先頭indexを返す。
func (c *convertProgressCollector) findIndex(target ConvertProgressEventType) int {
	for idx, event := range c.events {
		if event.Type == target {
			return idx
		}
	}
	return -1
}

// TestAssembleModelMinimalRig は3ジョイントと1三角形の最小リグの組み立てを検証する。
func TestAssembleModelMinimalRig(t *testing.T) {
	options := DefaultConvertOptions()
	options.InsertStabilizerBones = false
	options.AppendIkBones = false
	options.ApplyPoseRebase = false

	modelData, err := AssembleModel(AssembleRequest{Rig: newMinimalTestRig(), Options: options})
	if err != nil {
		t.Fatalf("assemble model failed: %v", err)
	}

	if modelData.Bones.Len() != 3 {
		t.Fatalf("bone count mismatch: got=%d", modelData.Bones.Len())
	}
	if modelData.Vertices.Len() != 4 {
		t.Fatalf("vertex count mismatch: got=%d", modelData.Vertices.Len())
	}
	for _, vertex := range modelData.Vertices.Values() {
		if vertex.DeformType != model.BDEF1 || len(vertex.Deform.Indexes) != 1 || vertex.Deform.Indexes[0] != 1 {
			t.Fatalf("vertex deform mismatch: index=%d deform=%+v", vertex.Index(), vertex.Deform)
		}
	}
	if modelData.Materials.Len() != 1 {
		t.Fatalf("material count mismatch: got=%d", modelData.Materials.Len())
	}
	material, _ := modelData.Materials.Get(0)
	if material.VerticesCount != 3 {
		t.Fatalf("material vertices count mismatch: got=%d", material.VerticesCount)
	}
	if modelData.Faces.Len() != 1 || modelData.Textures.Len() != 1 {
		t.Fatalf("face/texture count mismatch: faces=%d textures=%d", modelData.Faces.Len(), modelData.Textures.Len())
	}
	if modelData.Morphs.Len() != 0 {
		t.Fatalf("morphs should be empty: got=%d", modelData.Morphs.Len())
	}
	if modelData.DisplaySlots.Len() != len(displaySlotDefinitions) {
		t.Fatalf("display slot count mismatch: got=%d", modelData.DisplaySlots.Len())
	}
	if modelData.Name != "ミリシタ モデル00" || modelData.EnglishName != "MODEL_00" {
		t.Fatalf("model name mismatch: name=%s english=%s", modelData.Name, modelData.EnglishName)
	}
	if modelData.Comment == "" || modelData.EnglishComment == "" {
		t.Fatalf("model comment should be set")
	}
}

// TestAssembleModelRunsAllStagesInOrder は既定設定で全工程が順に実行されることを検証する。
func TestAssembleModelRunsAllStagesInOrder(t *testing.T) {
	avatar := newTestAvatar(humanoidTestJointDefs())
	elbowIndex := findTestJointIndex(t, avatar, mltdPathUpper2+"/SAKOTSU_R/KATA_R/UDE_R")
	rig := &source.SourceRig{
		Avatar: avatar,
		Mesh: &source.SourceMesh{
			Vertices: []source.Vertex{
				newTestSingleInfluenceVertex(mmath.NewVec3(0, 1, 0), testJointHash(3)),
				newTestSingleInfluenceVertex(mmath.NewVec3(-0.5, 1.35, 0), testJointHash(elbowIndex)),
				newTestSingleInfluenceVertex(mmath.NewVec3(0, 1.5, 0), testJointHash(7)),
			},
			Indices:   []uint32{0, 1, 2},
			SubMeshes: []source.SubMesh{{FirstIndex: 0, IndexCount: 3}},
			Shape:     newMorphTestShape("E_metoji_l", "E_metoji_r"),
		},
		BodyVertexCount: 3,
	}
	collector := &convertProgressCollector{}

	modelData, err := AssembleModel(AssembleRequest{
		Rig:              rig,
		Options:          DefaultConvertOptions(),
		ProgressReporter: collector,
	})
	if err != nil {
		t.Fatalf("assemble model failed: %v", err)
	}

	if modelData.Bones.Len() != len(avatar.Joints)+2+6 {
		t.Fatalf("bone count mismatch: got=%d", modelData.Bones.Len())
	}
	if got := mustGetVertex(t, modelData.Vertices, 0).Deform.Indexes[0]; got != mustGetBoneByName(t, modelData.Bones, "腰").Index() {
		t.Fatalf("waist vertex should follow shifted waist bone: got=%d", got)
	}
	if got := mustGetVertex(t, modelData.Vertices, 1).Deform.Indexes[0]; got != mustGetBoneByName(t, modelData.Bones, "右ひじ").Index() {
		t.Fatalf("elbow vertex should follow shifted elbow bone: got=%d", got)
	}
	if modelData.Morphs.Len() != 3 {
		t.Fatalf("morph count mismatch: got=%d", modelData.Morphs.Len())
	}
	assertBoneReferencesInRange(t, modelData)

	order := []ConvertProgressEventType{
		ConvertProgressEventTypeVerticesAssembled,
		ConvertProgressEventTypeSkeletonBuilt,
		ConvertProgressEventTypeAstanceCompleted,
		ConvertProgressEventTypeStabilizerInserted,
		ConvertProgressEventTypeIkAppended,
		ConvertProgressEventTypeMaterialsAssembled,
		ConvertProgressEventTypeMorphsAssembled,
		ConvertProgressEventTypeDisplaySlotsAssembled,
	}
	prev := -1
	for _, eventType := range order {
		idx := collector.findIndex(eventType)
		if idx <= prev {
			t.Fatalf("progress order mismatch: type=%s index=%d prev=%d", eventType, idx, prev)
		}
		prev = idx
	}
}

// TestAssembleModelRejectsInvalidOptions は命名方式と補正工程の組み合わせ検証を確認する。
func TestAssembleModelRejectsInvalidOptions(t *testing.T) {
	options := DefaultConvertOptions()
	options.SkeletonFormat = SkeletonFormatMltd
	if _, err := AssembleModel(AssembleRequest{Rig: newMinimalTestRig(), Options: options}); err == nil {
		t.Fatalf("expected error for mltd naming with ik")
	}

	options = DefaultConvertOptions()
	options.SkeletonFormat = SkeletonFormat("unknown")
	if _, err := AssembleModel(AssembleRequest{Rig: newMinimalTestRig(), Options: options}); err == nil {
		t.Fatalf("expected error for unknown naming")
	}

	if _, err := AssembleModel(AssembleRequest{Options: DefaultConvertOptions()}); err == nil {
		t.Fatalf("expected error for empty rig")
	}
}

// TestAssembleModelFailsWhenPoseRebaseCannotFindArms は腕が無いリグでAスタンス補正が失敗することを検証する。
func TestAssembleModelFailsWhenPoseRebaseCannotFindArms(t *testing.T) {
	options := DefaultConvertOptions()
	options.InsertStabilizerBones = false
	options.AppendIkBones = false

	_, err := AssembleModel(AssembleRequest{Rig: newMinimalTestRig(), Options: options})
	if !merrors.IsStructuralError(err) {
		t.Fatalf("expected structural error: got=%v", err)
	}
}

// newMinimalTestRig はroot→spine→headの3ジョイントと4頂点1三角形のリグを生成する。
func newMinimalTestRig() *source.SourceRig {
	avatar := newTestAvatar([]testJointDef{
		{Path: ""},
		{Path: "spine", Translation: mmath.NewVec3(0, 1, 0)},
		{Path: "spine/head", Translation: mmath.NewVec3(0, 0.5, 0)},
	})
	mesh := &source.SourceMesh{
		Indices:   []uint32{0, 1, 2},
		SubMeshes: []source.SubMesh{{FirstIndex: 0, IndexCount: 3}},
	}
	for i := 0; i < 4; i++ {
		mesh.Vertices = append(mesh.Vertices, newTestSingleInfluenceVertex(mmath.NewVec3(float64(i), 1, 0), testJointHash(1)))
	}
	return &source.SourceRig{Avatar: avatar, Mesh: mesh, BodyVertexCount: 4}
}
