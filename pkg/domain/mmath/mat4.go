// 指示: miu200521358
package mmath

import "github.com/go-gl/mathgl/mgl64"

// Mat4 は列優先の4x4行列を表す。
type Mat4 struct {
	mgl64.Mat4
}

// NewMat4 は単位行列を返す。
func NewMat4() Mat4 {
	return Mat4{Mat4: mgl64.Ident4()}
}

// NewZeroMat4 は零行列を返す。
func NewZeroMat4() Mat4 {
	return Mat4{}
}

// NewTranslationMat4 は平行移動行列を返す。
func NewTranslationMat4(v Vec3) Mat4 {
	return Mat4{Mat4: mgl64.Translate3D(v.X, v.Y, v.Z)}
}

// Muled は行列積(m * other)を返す。
func (m Mat4) Muled(other Mat4) Mat4 {
	return Mat4{Mat4: m.Mat4.Mul4(other.Mat4)}
}

// Added は行列和を返す。
func (m Mat4) Added(other Mat4) Mat4 {
	return Mat4{Mat4: m.Mat4.Add(other.Mat4)}
}

// MuledScalar はスカラー倍した行列を返す。
func (m Mat4) MuledScalar(scale float64) Mat4 {
	return Mat4{Mat4: m.Mat4.Mul(scale)}
}

// MulPosition は位置ベクトルを変換する。w除算は行わない。
func (m Mat4) MulPosition(v Vec3) Vec3 {
	out := m.Mat4.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	return NewVec3(out[0], out[1], out[2])
}

// MulNormal は回転成分(3x3)のみで方向ベクトルを変換する。
func (m Mat4) MulNormal(v Vec3) Vec3 {
	out := m.Mat4.Mat3().Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return NewVec3(out[0], out[1], out[2])
}

// Translation は平行移動成分を返す。
func (m Mat4) Translation() Vec3 {
	return NewVec3(m.Mat4[12], m.Mat4[13], m.Mat4[14])
}
