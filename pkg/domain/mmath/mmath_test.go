// 指示: miu200521358
package mmath

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(0.5, -1, 2)

	if got := a.Added(b); !got.NearEquals(NewVec3(1.5, 1, 5), 1e-12) {
		t.Fatalf("added mismatch: got=%v", got)
	}
	if got := a.Subed(b); !got.NearEquals(NewVec3(0.5, 3, 1), 1e-12) {
		t.Fatalf("subed mismatch: got=%v", got)
	}
	if got := a.MuledScalar(2); !got.NearEquals(NewVec3(2, 4, 6), 1e-12) {
		t.Fatalf("muled scalar mismatch: got=%v", got)
	}
	if got := NewVec3(3, 4, 0).Length(); math.Abs(got-5) > 1e-12 {
		t.Fatalf("length mismatch: got=%f", got)
	}
}

func TestVec3NormalizedKeepsZeroVector(t *testing.T) {
	if got := ZERO_VEC3.Normalized(); !got.NearEquals(ZERO_VEC3, 0) {
		t.Fatalf("zero vector should stay zero: got=%v", got)
	}
	if got := NewVec3(0, 0, 2).Normalized(); !got.NearEquals(NewVec3(0, 0, 1), 1e-12) {
		t.Fatalf("normalized mismatch: got=%v", got)
	}
}

func TestQuaternionFromDegreesRollsAroundZ(t *testing.T) {
	q := NewQuaternionFromDegrees(0, 0, 90)
	got := q.MulVec3(NewVec3(1, 0, 0))
	if !got.NearEquals(NewVec3(0, 1, 0), 1e-9) {
		t.Fatalf("roll +90 should map X to Y: got=%v", got)
	}
}

func TestMat4TranslationAndRotationCompose(t *testing.T) {
	m := NewTranslationMat4(NewVec3(1, 2, 3)).Muled(NewQuaternionFromDegrees(0, 0, 90).ToMat4())

	if got := m.MulPosition(NewVec3(1, 0, 0)); !got.NearEquals(NewVec3(1, 3, 3), 1e-9) {
		t.Fatalf("position mismatch: got=%v", got)
	}
	if got := m.MulNormal(NewVec3(1, 0, 0)); !got.NearEquals(NewVec3(0, 1, 0), 1e-9) {
		t.Fatalf("normal should ignore translation: got=%v", got)
	}
	if got := m.Translation(); !got.NearEquals(NewVec3(1, 2, 3), 1e-12) {
		t.Fatalf("translation mismatch: got=%v", got)
	}
}

func TestMat4WeightedBlend(t *testing.T) {
	a := NewTranslationMat4(NewVec3(2, 0, 0))
	b := NewMat4()
	blend := NewZeroMat4().Added(a.MuledScalar(0.5)).Added(b.MuledScalar(0.5))

	if got := blend.MulPosition(ZERO_VEC3); !got.NearEquals(NewVec3(1, 0, 0), 1e-12) {
		t.Fatalf("blend mismatch: got=%v", got)
	}
}
