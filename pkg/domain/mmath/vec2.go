// 指示: miu200521358
package mmath

// Vec2 は2次元ベクトルを表す。UV座標に用いる。
type Vec2 struct {
	X float64
	Y float64
}

// NewVec2 はVec2を生成する。
func NewVec2(x float64, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// NearEquals は許容誤差内で等しいか判定する。
func (v Vec2) NearEquals(other Vec2, epsilon float64) bool {
	return NearEquals(v.X, other.X, epsilon) && NearEquals(v.Y, other.Y, epsilon)
}
