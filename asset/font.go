package asset

import (
	"errors"
	"fmt"
)

// ErrUnknownFont is returned for a font name with no built-in style
var ErrUnknownFont = errors.New("unknown font")

// Font is a terminal text style standing in for a rasterised face
type Font struct {
	Name      string
	Bold      bool
	Italic    bool
	Underline bool
	// Spacing inserts blank cells between glyphs
	Spacing   int
}

var builtinFonts = map[string]Font{
	"russo_one": {Bold: true, Spacing: 0},
	"ubuntu":    {},
	"ubuntu_it": {Italic: true},
	"wide":      {Bold: true, Spacing: 1},
}

// FontLoader resolves built-in fonts by name
func FontLoader(name string, _ struct{}) (*Font, error) {
	f, ok := builtinFonts[name]
	if !ok {
		return nil, fmt.Errorf("font %q: %w", name, ErrUnknownFont)
	}
	f.Name = name
	return &f, nil
}
