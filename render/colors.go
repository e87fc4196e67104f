package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Frame colors
var (
	RgbBackground = tcell.NewRGBColor(10, 12, 24)    // Deep space
	RgbLetterbox  = tcell.NewRGBColor(0, 0, 0)       // Bars outside the viewport
	RgbDefaultFg  = tcell.NewRGBColor(255, 255, 255) // Untinted glyphs and quads
	RgbAABB       = tcell.NewRGBColor(255, 220, 0)   // Collision box overlay
	RgbDebugText  = tcell.NewRGBColor(0, 255, 0)     // FPS and object counters
	RgbPauseText  = tcell.NewRGBColor(255, 255, 255) // Pause banner glyphs
	RgbPauseBg    = tcell.NewRGBColor(160, 30, 30)   // Pause banner fill
)

// PauseDim is how far paused frames fade toward the background
const PauseDim = 0.6

// Palette resolves color names to terminal colors, caching each lookup
type Palette struct {
	colors map[string]tcell.Color
}

// NewPalette creates an empty palette
func NewPalette() *Palette {
	return &Palette{colors: make(map[string]tcell.Color)}
}

// Color resolves "#rrggbb" or a W3C color name, returning fallback for empty or unknown names
func (p *Palette) Color(name string, fallback tcell.Color) tcell.Color {
	if name == "" {
		return fallback
	}
	if c, ok := p.colors[name]; ok {
		return c
	}

	var c tcell.Color
	if hex, err := colorful.Hex(name); err == nil {
		r, g, b := hex.RGB255()
		c = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	} else {
		c = tcell.GetColor(name)
	}
	if c == tcell.ColorDefault {
		c = fallback
	}
	p.colors[name] = c
	return c
}

// Blend mixes a toward b by t in Lab space
func Blend(a, b tcell.Color, t float64) tcell.Color {
	if a == tcell.ColorDefault || b == tcell.ColorDefault {
		return a
	}
	r, g, bl := toColorful(a).BlendLab(toColorful(b), t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
