package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/skirmish/constant"
	"github.com/lixenwraith/skirmish/engine"
	"github.com/lixenwraith/skirmish/vmath"
)

// Overlay anchors in camera space, x is scaled by the aspect ratio
var (
	fpsAnchor   = vmath.Vec2{-0.99, -0.99}
	countAnchor = vmath.Vec2{0.68, -0.99}
)

// Renderer draws the scene into a terminal screen
type Renderer struct {
	screen  tcell.Screen
	buf     *Buffer
	camera  Camera
	palette *Palette
	log     *zap.Logger
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	w, h := screen.Size()
	return &Renderer{
		screen:  screen,
		buf:     NewBuffer(w, h),
		camera:  NewCamera(w, h),
		palette: NewPalette(),
		log:     log.Named("render"),
	}
}

// Camera returns the current cell mapping
func (r *Renderer) Camera() Camera {
	return r.camera
}

// Buffer returns the last composed frame
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Render composes one frame, blending each entity between its previous and current transform by alpha
func (r *Renderer) Render(g *engine.Game, frameTime, alpha float32) {
	g.FPS.Sample(frameTime)
	r.resize()
	r.clear()

	for l := engine.Layer(0); l < engine.LayerCount; l++ {
		layer := g.Scene.Layers[l]
		// newest first so earlier entities end up on top
		for i := len(layer) - 1; i >= 0; i-- {
			r.drawEntity(&layer[i], alpha)
		}
	}

	if g.Render.AABBs && g.Hover {
		g.Scene.Each(func(_ engine.Layer, e *engine.Entity) {
			if box, ok := e.WorldAABB(); ok {
				r.drawBox(box)
			}
		})
	}

	if g.Render.DebugInfo {
		r.drawDebug(g)
	}

	if g.Paused {
		r.drawPaused()
	}

	r.buf.Flush(r.screen)
	r.screen.Show()
}

func (r *Renderer) resize() {
	w, h := r.screen.Size()
	if bw, bh := r.buf.Bounds(); bw == w && bh == h {
		return
	}
	r.buf.Resize(w, h)
	r.camera = NewCamera(w, h)
	r.log.Debug("resized", zap.Int("cols", w), zap.Int("rows", h))
}

func (r *Renderer) clear() {
	r.buf.Fill(tcell.StyleDefault.Background(RgbLetterbox))
	inside := tcell.StyleDefault.Background(RgbBackground)
	minCol, minRow, maxCol, maxRow := r.camera.CellRect()
	for row := minRow; row < maxRow; row++ {
		for col := minCol; col < maxCol; col++ {
			r.buf.Set(col, row, ' ', inside)
		}
	}
}

func (r *Renderer) drawEntity(e *engine.Entity, alpha float32) {
	if e.Mesh == nil {
		return
	}
	t := vmath.LerpTransform(e.PrevTransform, e.Transform, alpha)

	switch {
	case e.Texture != nil:
		frame := 0
		if e.Sprite != nil {
			frame = e.Mesh.Get().QuadAt(e.Sprite.Frame().Offset)
		}
		r.drawSprite(t, e.Texture.Get(), frame, e.Color)
	case e.Text != nil:
		r.drawTextEntity(t, e.Text)
	default:
		r.drawQuad(t, r.palette.Color(e.Color, RgbDefaultFg))
	}
}

func (r *Renderer) drawDebug(g *engine.Game) {
	style := tcell.StyleDefault.Foreground(RgbDebugText)
	a := constant.AspectRatio

	fps := fmt.Sprintf("FPS %.0f ms %.3f", g.FPS.FPS(), g.FPS.FrameMillis())
	r.drawText(vmath.Vec2{fpsAnchor.X() * a, fpsAnchor.Y()}, false, fps, style, 0)

	count := fmt.Sprintf("OBJ %03d", g.Scene.Count())
	r.drawText(vmath.Vec2{countAnchor.X() * a, countAnchor.Y()}, false, count, style, 0)
}

// drawPaused fades the frame and stamps a banner in the middle
func (r *Renderer) drawPaused() {
	r.buf.Map(func(s tcell.Style) tcell.Style {
		fg, bg, _ := s.Decompose()
		return s.Foreground(Blend(fg, RgbBackground, PauseDim)).Background(Blend(bg, RgbLetterbox, PauseDim))
	})
	style := tcell.StyleDefault.Foreground(RgbPauseText).Background(RgbPauseBg).Bold(true)
	r.drawText(vmath.Vec2{0, 0}, true, " PAUSED ", style, 0)
}
