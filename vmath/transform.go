package vmath

import "github.com/go-gl/mathgl/mgl32"

// DefaultScale is the scale of a freshly constructed transform
const DefaultScale float32 = 0.5

// Transform places an entity in camera space
// Rotation is in degrees around the Z axis
type Transform struct {
	Position Vec2    `yaml:"position"`
	Scale    Vec2    `yaml:"scale"`
	Rotation float32 `yaml:"rotation"`
}

// NewTransform returns a transform at the origin with the default scale
func NewTransform() Transform {
	return Transform{Scale: Vec2{DefaultScale, DefaultScale}}
}

// At returns a default transform moved to position
func At(position Vec2) Transform {
	t := NewTransform()
	t.Position = position
	return t
}

// Matrix composes the world matrix as translate * rotate * scale
func (t Transform) Matrix() Mat4 {
	translation := mgl32.Translate3D(t.Position.X(), t.Position.Y(), 0)
	rotation := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation))
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), 1)
	return translation.Mul4(rotation).Mul4(scale)
}

// LerpTransform blends position, scale and rotation independently
func LerpTransform(prev, curr Transform, alpha float32) Transform {
	return Transform{
		Position: LerpVec2(prev.Position, curr.Position, alpha),
		Scale:    LerpVec2(prev.Scale, curr.Scale, alpha),
		Rotation: Lerp(prev.Rotation, curr.Rotation, alpha),
	}
}
