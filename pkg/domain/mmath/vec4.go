// 指示: miu200521358
package mmath

// Vec4 は4次元ベクトルを表す。色(RGBA)に用いる。
type Vec4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

// NewVec4 はVec4を生成する。
func NewVec4(x float64, y float64, z float64, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}
