// 指示: miu200521358
package mmath

import "github.com/go-gl/mathgl/mgl64"

// Quaternion は回転を表す。
type Quaternion struct {
	mgl64.Quat
}

// NewQuaternion は成分からQuaternionを生成する。
func NewQuaternion(x float64, y float64, z float64, w float64) Quaternion {
	return Quaternion{Quat: mgl64.Quat{W: w, V: mgl64.Vec3{x, y, z}}}
}

// NewQuaternionIdentity は単位回転を返す。
func NewQuaternionIdentity() Quaternion {
	return Quaternion{Quat: mgl64.QuatIdent()}
}

// NewQuaternionFromRadians はオイラー角(ラジアン)からQuaternionを生成する。
// 回転順はY→X→Z。
func NewQuaternionFromRadians(x float64, y float64, z float64) Quaternion {
	return Quaternion{Quat: mgl64.AnglesToQuat(y, x, z, mgl64.YXZ)}
}

// NewQuaternionFromDegrees はオイラー角(度)からQuaternionを生成する。
func NewQuaternionFromDegrees(x float64, y float64, z float64) Quaternion {
	return NewQuaternionFromRadians(DegToRad(x), DegToRad(y), DegToRad(z))
}

// Muled は回転合成結果を返す。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{Quat: q.Quat.Mul(other.Quat)}
}

// Normalized は正規化結果を返す。
func (q Quaternion) Normalized() Quaternion {
	return Quaternion{Quat: q.Quat.Normalize()}
}

// MulVec3 はベクトルを回転させる。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	rotated := q.Quat.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return NewVec3(rotated[0], rotated[1], rotated[2])
}

// ToMat4 は回転行列を返す。
func (q Quaternion) ToMat4() Mat4 {
	return Mat4{Mat4: q.Quat.Normalize().Mat4()}
}

// NearEquals は許容誤差内で等しいか判定する。
func (q Quaternion) NearEquals(other Quaternion, epsilon float64) bool {
	return NearEquals(q.Quat.W, other.Quat.W, epsilon) &&
		NearEquals(q.Quat.V[0], other.Quat.V[0], epsilon) &&
		NearEquals(q.Quat.V[1], other.Quat.V[1], epsilon) &&
		NearEquals(q.Quat.V[2], other.Quat.V[2], epsilon)
}
