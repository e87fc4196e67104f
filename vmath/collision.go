package vmath

// AABB is an axis-aligned bounding box
// Component boxes are in the owning entity's local space, origin at transform.Position
//
//	    +---+ max
//	    | x |
//	min +---+
type AABB struct {
	Min Vec2 `yaml:"min"`
	Max Vec2 `yaml:"max"`
}

// Box builds an AABB from its corner coordinates
func Box(minX, minY, maxX, maxY float32) AABB {
	return AABB{Min: Vec2{minX, minY}, Max: Vec2{maxX, maxY}}
}

// Transform maps both corners through m and re-derives min/max, so reflections and negative scales stay well-formed
// Rotation is not accounted for: a rotated matrix yields an axis-aligned box through the two mapped corners only
func (b AABB) Transform(m Mat4) AABB {
	p := TransformPoint(m, b.Min)
	q := TransformPoint(m, b.Max)
	return AABB{
		Min: Vec2{min(p.X(), q.X()), min(p.Y(), q.Y())},
		Max: Vec2{max(p.X(), q.X()), max(p.Y(), q.Y())},
	}
}

// Width returns the horizontal extent
func (b AABB) Width() float32 { return b.Max.X() - b.Min.X() }

// Height returns the vertical extent
func (b AABB) Height() float32 { return b.Max.Y() - b.Min.Y() }

// ClampPoint clamps each axis of p into the box independently
func (b AABB) ClampPoint(p Vec2) Vec2 {
	return Vec2{
		Clamp(p.X(), b.Min.X(), b.Max.X()),
		Clamp(p.Y(), b.Min.Y(), b.Max.Y()),
	}
}

// Overlap reports whether two boxes in the same space intersect on both axes
// Comparisons are strict: boxes sharing only an edge do not overlap
func Overlap(a, b AABB) bool {
	return a.Min.X() < b.Max.X() &&
		a.Max.X() > b.Min.X() &&
		a.Min.Y() < b.Max.Y() &&
		a.Max.Y() > b.Min.Y()
}
