package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is a camera-space 2D vector
type Vec2 = mgl32.Vec2

// Mat4 is a column-major 4x4 world matrix
type Mat4 = mgl32.Mat4

// Lerp linearly interpolates between a and b
func Lerp(a, b, alpha float32) float32 {
	return a + (b-a)*alpha
}

// LerpVec2 interpolates both components independently
func LerpVec2(a, b Vec2, alpha float32) Vec2 {
	return Vec2{Lerp(a.X(), b.X(), alpha), Lerp(a.Y(), b.Y(), alpha)}
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sin is a float32 convenience over math.Sin
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// TransformPoint maps a 2D point through m with z=0, w=1
func TransformPoint(m Mat4, p Vec2) Vec2 {
	v := m.Mul4x1(mgl32.Vec4{p.X(), p.Y(), 0, 1})
	return Vec2{v.X(), v.Y()}
}
