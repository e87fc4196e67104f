package asset

// IndicesPerQuad is the index count of one quad, two triangles
const IndicesPerQuad = 6

// Mesh is a render handle, a strip of quads addressed by index ranges
// Quad i of a sprite mesh shows frame i of its texture
type Mesh struct {
	Quads   int
	Indices int
}

// GenSpriteQuads builds a mesh with count quads, one per animation frame
func GenSpriteQuads(count int) *Mesh {
	if count < 1 {
		count = 1
	}
	return &Mesh{Quads: count, Indices: count * IndicesPerQuad}
}

// FrameRange returns the index range drawing quad i
func FrameRange(i int) (offset, count int) {
	return i * IndicesPerQuad, IndicesPerQuad
}

// Covers reports whether the index range lies inside the mesh
func (m *Mesh) Covers(offset, count int) bool {
	return m != nil && offset >= 0 && count > 0 && offset+count <= m.Indices
}

// QuadAt returns the quad an index offset starts in
func (m *Mesh) QuadAt(offset int) int {
	return offset / IndicesPerQuad
}
