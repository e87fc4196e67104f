package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell of the frame
// A zero Rune marks the trailing half of a wide glyph
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is the off-screen frame, flushed to the screen once per render
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
}

// Bounds returns the buffer dimensions
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// Fill resets every cell to a blank with the given style using exponential copy
func (b *Buffer) Fill(style tcell.Style) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: style}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), out of bounds yields a zero cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune and style, a style without background keeps the cell's background
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	if _, bg, _ := style.Decompose(); bg == tcell.ColorDefault {
		_, keep, _ := dst.Style.Decompose()
		style = style.Background(keep)
	}
	dst.Rune = r
	dst.Style = style
}

// SetBg changes only the background color
func (b *Buffer) SetBg(x, y int, bg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Style = dst.Style.Background(bg)
}

// Map rewrites every cell's style through fn
func (b *Buffer) Map(fn func(tcell.Style) tcell.Style) {
	for i := range b.cells {
		b.cells[i].Style = fn(b.cells[i].Style)
	}
}

// Flush copies the buffer to the screen, skipping wide glyph continuations
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.Rune == 0 {
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
