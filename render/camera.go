package render

import (
	"math"

	"github.com/lixenwraith/skirmish/constant"
	"github.com/lixenwraith/skirmish/input"
	"github.com/lixenwraith/skirmish/vmath"
)

// Camera maps camera space onto terminal cells through the letterboxed viewport
// Camera space spans [-aspect, aspect] horizontally and [-1, 1] vertically with y up
type Camera struct {
	Viewport input.Viewport
	cols     int
	rows     int
}

// NewCamera fits the viewport into a grid of cols x rows cells
func NewCamera(cols, rows int) Camera {
	return Camera{
		Viewport: input.Letterbox(cols*constant.CellPixelWidth, rows*constant.CellPixelHeight),
		cols:     cols,
		rows:     rows,
	}
}

// ToPixel maps a camera-space point to framebuffer pixels
func (c Camera) ToPixel(p vmath.Vec2) (float32, float32) {
	vp := c.Viewport
	a := constant.AspectRatio
	return vp.OffsetX + (p.X()+a)/(2*a)*vp.Width,
		vp.OffsetY + (1-p.Y())/2*vp.Height
}

// ToCell maps a camera-space point to the cell containing it
func (c Camera) ToCell(p vmath.Vec2) (int, int) {
	px, py := c.ToPixel(p)
	return floor(px / constant.CellPixelWidth), floor(py / constant.CellPixelHeight)
}

// CellCenter maps a cell back to the camera-space point at its center
func (c Camera) CellCenter(col, row int) vmath.Vec2 {
	vp := c.Viewport
	if vp.Empty() {
		return vmath.Vec2{}
	}
	a := constant.AspectRatio
	px := (float32(col) + 0.5) * constant.CellPixelWidth
	py := (float32(row) + 0.5) * constant.CellPixelHeight
	return vmath.Vec2{
		(px-vp.OffsetX)/vp.Width*2*a - a,
		1 - (py-vp.OffsetY)/vp.Height*2,
	}
}

// CellRect returns the cell range covered by the viewport, max exclusive
func (c Camera) CellRect() (minCol, minRow, maxCol, maxRow int) {
	vp := c.Viewport
	minCol = ceil(vp.OffsetX/constant.CellPixelWidth - 0.5)
	minRow = ceil(vp.OffsetY/constant.CellPixelHeight - 0.5)
	maxCol = min(c.cols, ceil((vp.OffsetX+vp.Width)/constant.CellPixelWidth-0.5))
	maxRow = min(c.rows, ceil((vp.OffsetY+vp.Height)/constant.CellPixelHeight-0.5))
	return max(minCol, 0), max(minRow, 0), maxCol, maxRow
}

// Visible reports whether a cell's center lies inside the viewport
func (c Camera) Visible(col, row int) bool {
	minCol, minRow, maxCol, maxRow := c.CellRect()
	return col >= minCol && col < maxCol && row >= minRow && row < maxRow
}

func floor(v float32) int {
	return int(math.Floor(float64(v)))
}

func ceil(v float32) int {
	return int(math.Ceil(float64(v)))
}
