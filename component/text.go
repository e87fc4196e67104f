package component

import (
	"github.com/lixenwraith/skirmish/asset"
)

// TextFormat describes how a text entity is drawn
type TextFormat struct {
	Content          string
	Font             *asset.Ref[*asset.Font]
	Color            string
	OutlineColor     string
	OutlineThickness float32
}

// Clone retains the font and copies the rest
func (f *TextFormat) Clone() *TextFormat {
	if f == nil {
		return nil
	}
	c := *f
	c.Font = f.Font.Retain()
	return &c
}

// Release drops the font reference
func (f *TextFormat) Release() {
	if f == nil {
		return
	}
	f.Font.Release()
	f.Font = nil
}
