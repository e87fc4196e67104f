package input

import (
	"github.com/lixenwraith/skirmish/constant"
	"github.com/lixenwraith/skirmish/vmath"
)

// Viewport is the letterboxed drawing region inside the framebuffer, in pixels
type Viewport struct {
	OffsetX float32
	OffsetY float32
	Width   float32
	Height  float32
}

// Letterbox fits the design aspect ratio into a w x h framebuffer, centering the unused bars
func Letterbox(w, h int) Viewport {
	width, height := float32(w), float32(h)
	if width <= 0 || height <= 0 {
		return Viewport{}
	}

	var restX, restY float32
	if width/height < constant.AspectRatio {
		restY = height - width*constant.AspectRatioInverse
	} else {
		restX = width - height*constant.AspectRatio
	}
	return Viewport{
		OffsetX: restX / 2,
		OffsetY: restY / 2,
		Width:   width - restX,
		Height:  height - restY,
	}
}

// Empty reports whether the viewport has no drawable area
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Aspect returns width over height, or the design ratio for an empty viewport
func (v Viewport) Aspect() float32 {
	if v.Empty() {
		return constant.AspectRatio
	}
	return v.Width / v.Height
}

// Pointer tracks the cursor in camera space, x spans [-aspect, aspect] and y spans [-1, 1] upward
type Pointer struct {
	viewport  Viewport
	cursor    vmath.Vec2
	normal    vmath.Vec2
	pixelSize vmath.Vec2
}

// NewPointer creates a pointer over a framebuffer of w x h pixels
func NewPointer(w, h int) *Pointer {
	p := &Pointer{}
	p.Resize(w, h)
	return p
}

// Resize recomputes the viewport and re-normalizes the last cursor position
func (p *Pointer) Resize(w, h int) {
	p.viewport = Letterbox(w, h)
	if p.viewport.Empty() {
		p.pixelSize = vmath.Vec2{}
	} else {
		p.pixelSize = vmath.Vec2{1 / p.viewport.Width, 1 / p.viewport.Height}
	}
	p.normalize()
}

// MoveCursor records a framebuffer pixel position
func (p *Pointer) MoveCursor(x, y float32) {
	p.cursor = vmath.Vec2{x, y}
	p.normalize()
}

func (p *Pointer) normalize() {
	vp := p.viewport
	if vp.Empty() {
		return
	}
	aspect := vp.Aspect()
	p.normal = vmath.Vec2{
		(p.cursor.X()-vp.OffsetX)*2*aspect/vp.Width - aspect,
		(p.cursor.Y()-vp.OffsetY)*-2/vp.Height + 1,
	}
}

// Viewport returns the current letterboxed region
func (p *Pointer) Viewport() Viewport {
	return p.viewport
}

// Normalized returns the cursor in camera space
func (p *Pointer) Normalized() vmath.Vec2 {
	return p.normal
}

// PixelSize returns one viewport pixel as a fraction of the viewport extent
func (p *Pointer) PixelSize() vmath.Vec2 {
	return p.pixelSize
}
