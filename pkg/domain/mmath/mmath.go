// 指示: miu200521358
// Package mmath は変換処理で使う幾何演算を提供する。
package mmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultEpsilon は近似比較の既定許容誤差。
const DefaultEpsilon = 1e-8

// DegToRad は度をラジアンへ変換する。
func DegToRad(degree float64) float64 {
	return mgl64.DegToRad(degree)
}

// RadToDeg はラジアンを度へ変換する。
func RadToDeg(radian float64) float64 {
	return mgl64.RadToDeg(radian)
}

// NearEquals は2値が許容誤差内で等しいか判定する。
func NearEquals(a float64, b float64, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}
