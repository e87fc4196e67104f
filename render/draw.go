package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/skirmish/asset"
	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/vmath"
)

// quadCorners is the unit quad every mesh frame is drawn on, in entity-local space
var quadCorners = [4]vmath.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

const quadFill = '█'

// Box drawing glyphs for the collision overlay
const (
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
	boxPoint       = '+'
)

// rasterize calls fn for every visible cell whose center falls inside the quad placed by t
// local is the cell center in quad space, both axes in [-1, 1]
func (r *Renderer) rasterize(t vmath.Transform, fn func(col, row int, local vmath.Vec2)) {
	m := t.Matrix()
	if m.Det() == 0 {
		return
	}
	inv := m.Inv()

	loCol, loRow := math.MaxInt, math.MaxInt
	hiCol, hiRow := math.MinInt, math.MinInt
	for _, corner := range quadCorners {
		col, row := r.camera.ToCell(vmath.TransformPoint(m, corner))
		loCol, hiCol = min(loCol, col), max(hiCol, col)
		loRow, hiRow = min(loRow, row), max(hiRow, row)
	}

	minCol, minRow, maxCol, maxRow := r.camera.CellRect()
	loCol, loRow = max(loCol, minCol), max(loRow, minRow)
	hiCol, hiRow = min(hiCol, maxCol-1), min(hiRow, maxRow-1)

	for row := loRow; row <= hiRow; row++ {
		for col := loCol; col <= hiCol; col++ {
			local := vmath.TransformPoint(inv, r.camera.CellCenter(col, row))
			if local.X() < -1 || local.X() > 1 || local.Y() < -1 || local.Y() > 1 {
				continue
			}
			fn(col, row, local)
		}
	}
}

// drawSprite samples one texture frame over the quad, blank glyphs are transparent
func (r *Renderer) drawSprite(t vmath.Transform, tex *asset.Texture, frame int, tint string) {
	if tex == nil || tex.Width == 0 || tex.Height == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(r.palette.Color(tint, r.palette.Color(tex.Color, RgbDefaultFg)))

	if tex.Tile {
		// one glyph per cell, repeating from the quad's top-left corner
		anchorCol, anchorRow := r.camera.ToCell(vmath.TransformPoint(t.Matrix(), quadCorners[3]))
		r.rasterize(t, func(col, row int, _ vmath.Vec2) {
			g := tex.Glyph(frame, wrap(col-anchorCol, tex.Width), wrap(row-anchorRow, tex.Height))
			if g != ' ' {
				r.buf.Set(col, row, g, style)
			}
		})
		return
	}

	r.rasterize(t, func(col, row int, local vmath.Vec2) {
		if g := sample(tex, frame, local); g != ' ' {
			r.buf.Set(col, row, g, style)
		}
	})
}

// sample picks the glyph under a quad-space point
// Linear filtering considers the bilinear footprint and keeps the heaviest non-blank glyph
func sample(tex *asset.Texture, frame int, local vmath.Vec2) rune {
	tx := (local.X() + 1) / 2 * float32(tex.Width)
	ty := (1 - local.Y()) / 2 * float32(tex.Height)

	if tex.Filter == asset.FilterNearest {
		return tex.Glyph(frame, min(floor(tx), tex.Width-1), min(floor(ty), tex.Height-1))
	}

	fx, fy := tx-0.5, ty-0.5
	x0, y0 := floor(fx), floor(fy)
	wx, wy := fx-float32(x0), fy-float32(y0)
	taps := [4]struct {
		dx, dy int
		w      float32
	}{
		{0, 0, (1 - wx) * (1 - wy)},
		{1, 0, wx * (1 - wy)},
		{0, 1, (1 - wx) * wy},
		{1, 1, wx * wy},
	}

	best, weight := ' ', float32(-1)
	for _, tap := range taps {
		g := tex.Glyph(frame, x0+tap.dx, y0+tap.dy)
		if g != ' ' && tap.w > weight {
			best, weight = g, tap.w
		}
	}
	return best
}

func (r *Renderer) drawQuad(t vmath.Transform, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	r.rasterize(t, func(col, row int, _ vmath.Vec2) {
		r.buf.Set(col, row, quadFill, style)
	})
}

// drawTextEntity centers the content on the entity position, the outline becomes the cell background
func (r *Renderer) drawTextEntity(t vmath.Transform, text *component.TextFormat) {
	style := tcell.StyleDefault.Foreground(r.palette.Color(text.Color, RgbDefaultFg))
	if text.OutlineThickness > 0 && text.OutlineColor != "" {
		style = style.Background(r.palette.Color(text.OutlineColor, RgbBackground))
	}

	spacing := 0
	if text.Font != nil {
		if f := text.Font.Get(); f != nil {
			style = style.Bold(f.Bold).Italic(f.Italic).Underline(f.Underline)
			spacing = f.Spacing
		}
	}
	r.drawText(t.Position, true, text.Content, style, spacing)
}

// drawText writes a single line anchored at p, either starting there or centered on it
func (r *Renderer) drawText(p vmath.Vec2, centered bool, s string, style tcell.Style, spacing int) {
	col, row := r.camera.ToCell(p)
	if centered {
		col -= TextWidth(s, spacing) / 2
	}
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.buf.Set(col, row, ch, style)
		if w == 2 {
			r.buf.Set(col+1, row, 0, style)
		}
		col += w + spacing
	}
}

// TextWidth returns the cell width of s with spacing cells between glyphs
func TextWidth(s string, spacing int) int {
	w, n := 0, 0
	for _, ch := range s {
		if cw := runewidth.RuneWidth(ch); cw > 0 {
			w += cw
			n++
		}
	}
	if n > 1 {
		w += spacing * (n - 1)
	}
	return w
}

// drawBox outlines a camera-space box
func (r *Renderer) drawBox(box vmath.AABB) {
	style := tcell.StyleDefault.Foreground(RgbAABB)
	left, top := r.camera.ToCell(vmath.Vec2{box.Min.X(), box.Max.Y()})
	right, bottom := r.camera.ToCell(vmath.Vec2{box.Max.X(), box.Min.Y()})

	if left == right && top == bottom {
		r.buf.Set(left, top, boxPoint, style)
		return
	}
	for col := left + 1; col < right; col++ {
		r.buf.Set(col, top, boxHorizontal, style)
		r.buf.Set(col, bottom, boxHorizontal, style)
	}
	for row := top + 1; row < bottom; row++ {
		r.buf.Set(left, row, boxVertical, style)
		r.buf.Set(right, row, boxVertical, style)
	}
	r.buf.Set(left, top, boxTopLeft, style)
	r.buf.Set(right, top, boxTopRight, style)
	r.buf.Set(left, bottom, boxBottomLeft, style)
	r.buf.Set(right, bottom, boxBottomRight, style)
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
