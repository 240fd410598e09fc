// 指示: miu200521358
package minteractor

import (
	"testing"

	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/source"
	"github.com/miu200521358/mu_mltd2pmx/pkg/infra/base/mlogging"
	"github.com/miu200521358/mu_mltd2pmx/pkg/shared/base/logging"
)

// testJointDef はテスト用ジョイント定義を表す。
type testJointDef struct {
	Path        string
	Translation mmath.Vec3
}

// testJointHash はテスト用ジョイントハッシュを返す。
func testJointHash(index int) uint32 {
	return uint32(1000 + index)
}

// newTestAvatar は回転無しのテスト用アバターを生成する。
func newTestAvatar(defs []testJointDef) *source.SourceAvatar {
	joints := make([]source.Joint, len(defs))
	for i, def := range defs {
		joints[i] = source.Joint{
			Path:        def.Path,
			Hash:        testJointHash(i),
			Rotation:    mmath.NewQuaternionIdentity(),
			Translation: def.Translation,
		}
	}
	return &source.SourceAvatar{Joints: joints}
}

// humanoidTestJointDefs は腕と足を持つテスト用ジョイント定義を返す。
func humanoidTestJointDefs() []testJointDef {
	defs := []testJointDef{
		{Path: "", Translation: mmath.NewVec3(0, 0, 0)},
		{Path: "POSITION", Translation: mmath.NewVec3(0, 0, 0)},
		{Path: "MODEL_00", Translation: mmath.NewVec3(0, 0, 0)},
		{Path: mltdPathBase, Translation: mmath.NewVec3(0, 1, 0)},
		{Path: mltdPathUpper, Translation: mmath.NewVec3(0, 0.1, 0)},
		{Path: mltdPathUpper2, Translation: mmath.NewVec3(0, 0.1, 0)},
		{Path: mltdPathNeck, Translation: mmath.NewVec3(0, 0.2, 0)},
		{Path: mltdPathNeck + "/KAO", Translation: mmath.NewVec3(0, 0.1, 0)},
		{Path: mltdPathLower, Translation: mmath.NewVec3(0, 0, 0)},
	}
	for _, side := range []struct {
		Suffix string
		Sign   float64
	}{
		{Suffix: "_L", Sign: 1},
		{Suffix: "_R", Sign: -1},
	} {
		shoulder := mltdPathUpper2 + "/SAKOTSU" + side.Suffix
		arm := shoulder + "/KATA" + side.Suffix
		elbow := arm + "/UDE" + side.Suffix
		wrist := elbow + "/TE" + side.Suffix
		leg := mltdPathLower + "/MOMO" + side.Suffix
		knee := leg + "/HIZA" + side.Suffix
		ankle := knee + "/ASHI" + side.Suffix
		toe := ankle + "/TSUMASAKI" + side.Suffix
		defs = append(defs,
			testJointDef{Path: shoulder, Translation: mmath.NewVec3(0.05*side.Sign, 0.15, 0)},
			testJointDef{Path: arm, Translation: mmath.NewVec3(0.1*side.Sign, 0, 0)},
			testJointDef{Path: elbow, Translation: mmath.NewVec3(0.25*side.Sign, 0, 0)},
			testJointDef{Path: wrist, Translation: mmath.NewVec3(0.25*side.Sign, 0, 0)},
			testJointDef{Path: leg, Translation: mmath.NewVec3(0.1*side.Sign, -0.1, 0)},
			testJointDef{Path: knee, Translation: mmath.NewVec3(0, -0.4, 0)},
			testJointDef{Path: ankle, Translation: mmath.NewVec3(0, -0.4, 0)},
			testJointDef{Path: toe, Translation: mmath.NewVec3(0, -0.05, 0.1)},
		)
	}
	return defs
}

// findTestJointIndex はパスからジョイントindexを返す。
func findTestJointIndex(t *testing.T, avatar *source.SourceAvatar, path string) int {
	t.Helper()
	for i, joint := range avatar.Joints {
		if joint.Path == path {
			return i
		}
	}
	t.Fatalf("joint not found: path=%s", path)
	return -1
}

// newTestSingleInfluenceVertex は1ウェイトの頂点を生成する。
func newTestSingleInfluenceVertex(position mmath.Vec3, hash uint32) source.Vertex {
	return source.Vertex{
		Position:   position,
		Normal:     mmath.NewVec3(0, 0, 1),
		Influences: []*source.Influence{{JointHash: hash, Weight: 1}},
	}
}

// newTestHumanoidModel はボーンと頂点を構築したテスト用モデルを生成する。
func newTestHumanoidModel(t *testing.T, options ConvertOptions) *ModelData {
	t.Helper()
	avatar := newTestAvatar(humanoidTestJointDefs())
	elbowIndex := findTestJointIndex(t, avatar, mltdPathUpper2+"/SAKOTSU_L/KATA_L/UDE_L")
	mesh := &source.SourceMesh{
		Vertices: []source.Vertex{
			newTestSingleInfluenceVertex(mmath.NewVec3(0, 1.2, 0), testJointHash(3)),
			newTestSingleInfluenceVertex(mmath.NewVec3(0.5, 1.35, 0), testJointHash(elbowIndex)),
		},
	}
	modelData := model.NewPmxModel()
	vertices, err := assembleVertices(avatar, mesh, 0, options)
	if err != nil {
		t.Fatalf("assemble vertices failed: %v", err)
	}
	bones, err := buildSkeleton(avatar, options)
	if err != nil {
		t.Fatalf("build skeleton failed: %v", err)
	}
	modelData.Vertices = vertices
	modelData.Bones = bones
	return modelData
}

// mustGetBoneByName は名前からボーンを取得する。
func mustGetBoneByName(t *testing.T, bones *model.BoneCollection, name string) *model.Bone {
	t.Helper()
	bone, err := bones.GetByName(name)
	if err != nil {
		t.Fatalf("bone not found: name=%s err=%v", name, err)
	}
	return bone
}

// mustGetVertex はindexから頂点を取得する。
func mustGetVertex(t *testing.T, vertices *model.VertexCollection, index int) *model.Vertex {
	t.Helper()
	vertex, err := vertices.Get(index)
	if err != nil {
		t.Fatalf("vertex not found: index=%d err=%v", index, err)
	}
	return vertex
}

// useTestLogger はテスト用ロガーを既定ロガーへ差し替える。
func useTestLogger(t *testing.T, level logging.LogLevel) *mlogging.Logger {
	t.Helper()
	logger := mlogging.NewLogger(nil)
	logger.SetLevel(level)
	logger.MessageBuffer().Clear()
	prevLogger := logging.DefaultLogger()
	logging.SetDefaultLogger(logger)
	t.Cleanup(func() {
		logging.SetDefaultLogger(prevLogger)
	})
	return logger
}
