// 指示: miu200521358
package mmath

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 は3次元ベクトルを表す。
type Vec3 struct {
	r3.Vec
}

// ZERO_VEC3 は零ベクトル。
var ZERO_VEC3 = Vec3{}

// NewVec3 はVec3を生成する。
func NewVec3(x float64, y float64, z float64) Vec3 {
	return Vec3{Vec: r3.Vec{X: x, Y: y, Z: z}}
}

// Added は加算結果を返す。
func (v Vec3) Added(other Vec3) Vec3 {
	return Vec3{Vec: r3.Add(v.Vec, other.Vec)}
}

// Subed は減算結果を返す。
func (v Vec3) Subed(other Vec3) Vec3 {
	return Vec3{Vec: r3.Sub(v.Vec, other.Vec)}
}

// MuledScalar はスカラー倍した結果を返す。
func (v Vec3) MuledScalar(scale float64) Vec3 {
	return Vec3{Vec: r3.Scale(scale, v.Vec)}
}

// Dot は内積を返す。
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(v.Vec, other.Vec)
}

// Length はベクトル長を返す。
func (v Vec3) Length() float64 {
	return r3.Norm(v.Vec)
}

// Normalized は正規化結果を返す。零ベクトルはそのまま返す。
func (v Vec3) Normalized() Vec3 {
	if v.Length() < DefaultEpsilon {
		return v
	}
	return Vec3{Vec: r3.Unit(v.Vec)}
}

// NearEquals は許容誤差内で等しいか判定する。
func (v Vec3) NearEquals(other Vec3, epsilon float64) bool {
	return NearEquals(v.X, other.X, epsilon) &&
		NearEquals(v.Y, other.Y, epsilon) &&
		NearEquals(v.Z, other.Z, epsilon)
}

// String は文字列表現を返す。
func (v Vec3) String() string {
	return fmt.Sprintf("[x=%.7f, y=%.7f, z=%.7f]", v.X, v.Y, v.Z)
}
