// 指示: miu200521358
package minteractor

import (
	"math"
	"testing"

	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/mmath"
	"github.com/miu200521358/mu_mltd2pmx/pkg/domain/model/merrors"
)

// TestApplyAstanceRebaseRotatesArmsAndSkin は腕回転と頂点の再スキニングを検証する。
func TestApplyAstanceRebaseRotatesArmsAndSkin(t *testing.T) {
	modelData := newTestHumanoidModel(t, DefaultConvertOptions())
	bones := modelData.Bones
	leftArm := mustGetBoneByName(t, bones, "左腕").Position
	leftElbow := mustGetBoneByName(t, bones, "左ひじ").Position
	leftWrist := mustGetBoneByName(t, bones, "左手首").Position
	rightArm := mustGetBoneByName(t, bones, "右腕").Position
	rightElbow := mustGetBoneByName(t, bones, "右ひじ").Position
	waist := mustGetBoneByName(t, bones, "腰").Position
	waistVertex := mustGetVertex(t, modelData.Vertices, 0).Position
	elbowVertex := mustGetVertex(t, modelData.Vertices, 1).Position

	if err := applyAstanceRebase(bones, modelData.Vertices); err != nil {
		t.Fatalf("apply a-stance failed: %v", err)
	}

	assertVec3Near(t, "left arm", mustGetBoneByName(t, bones, "左腕").Position, leftArm)
	assertVec3Near(t, "left elbow", mustGetBoneByName(t, bones, "左ひじ").Position,
		rotateAroundZForTest(leftElbow, leftArm, astanceLeftArmRollDegree))
	assertVec3Near(t, "left wrist", mustGetBoneByName(t, bones, "左手首").Position,
		rotateAroundZForTest(leftWrist, leftArm, astanceLeftArmRollDegree))
	assertVec3Near(t, "right elbow", mustGetBoneByName(t, bones, "右ひじ").Position,
		rotateAroundZForTest(rightElbow, rightArm, astanceRightArmRollDegree))
	assertVec3Near(t, "waist", mustGetBoneByName(t, bones, "腰").Position, waist)
	assertVec3Near(t, "waist vertex", mustGetVertex(t, modelData.Vertices, 0).Position, waistVertex)
	assertVec3Near(t, "elbow vertex", mustGetVertex(t, modelData.Vertices, 1).Position,
		rotateAroundZForTest(elbowVertex, leftArm, astanceLeftArmRollDegree))

	normal := mustGetVertex(t, modelData.Vertices, 1).Normal
	if !mmath.NearEquals(normal.Length(), 1, 1e-9) {
		t.Fatalf("normal should stay normalized: got=%v", normal)
	}
}

// TestApplyAstanceRebaseTwiceUsesRebakedPose は2回目の補正が1回目の焼き込み姿勢を基準にすることを検証する。
func TestApplyAstanceRebaseTwiceUsesRebakedPose(t *testing.T) {
	modelData := newTestHumanoidModel(t, DefaultConvertOptions())
	bones := modelData.Bones
	leftArm := mustGetBoneByName(t, bones, "左腕").Position
	leftElbow := mustGetBoneByName(t, bones, "左ひじ").Position
	elbowVertex := mustGetVertex(t, modelData.Vertices, 1).Position

	for i := 0; i < 2; i++ {
		if err := applyAstanceRebase(bones, modelData.Vertices); err != nil {
			t.Fatalf("apply a-stance failed: round=%d err=%v", i, err)
		}
	}

	assertVec3Near(t, "left elbow", mustGetBoneByName(t, bones, "左ひじ").Position,
		rotateAroundZForTest(leftElbow, leftArm, astanceLeftArmRollDegree*2))
	assertVec3Near(t, "elbow vertex", mustGetVertex(t, modelData.Vertices, 1).Position,
		rotateAroundZForTest(elbowVertex, leftArm, astanceLeftArmRollDegree*2))
}

// TestApplyAstanceRebaseRequiresArms は腕ボーンが無い場合の構造エラーを検証する。
func TestApplyAstanceRebaseRequiresArms(t *testing.T) {
	avatar := newTestAvatar([]testJointDef{{Path: ""}, {Path: "MODEL_00"}})
	bones, err := buildSkeleton(avatar, DefaultConvertOptions())
	if err != nil {
		t.Fatalf("build skeleton failed: %v", err)
	}
	if err := applyAstanceRebase(bones, nil); !merrors.IsStructuralError(err) {
		t.Fatalf("expected structural error: got=%v", err)
	}
}

// rotateAroundZForTest は中心点回りにZ軸回転させた位置を返す。
func rotateAroundZForTest(position mmath.Vec3, center mmath.Vec3, degree float64) mmath.Vec3 {
	radian := degree * math.Pi / 180
	relative := position.Subed(center)
	rotated := mmath.NewVec3(
		relative.X*math.Cos(radian)-relative.Y*math.Sin(radian),
		relative.X*math.Sin(radian)+relative.Y*math.Cos(radian),
		relative.Z,
	)
	return center.Added(rotated)
}

// assertVec3Near はベクトルが許容誤差内で一致することを検証する。
func assertVec3Near(t *testing.T, label string, got mmath.Vec3, expected mmath.Vec3) {
	t.Helper()
	if !got.NearEquals(expected, 1e-6) {
		t.Fatalf("%s mismatch: got=%v expected=%v", label, got, expected)
	}
}
