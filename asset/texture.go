package asset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Filter selects how a texture is sampled when scaled
type Filter uint8

const (
	// FilterNearest picks the closest glyph, sprites stay crisp
	FilterNearest Filter = iota
	// FilterLinear lets the renderer dither between neighbouring glyphs
	FilterLinear
)

func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterLinear:
		return "linear"
	default:
		return fmt.Sprintf("filter(%d)", uint8(f))
	}
}

// Texture is a glyph sheet, each frame a grid of runes of equal size
// A space rune is transparent
type Texture struct {
	Name   string
	Color  string
	Tile   bool
	Filter Filter
	Width  int
	Height int
	frames [][][]rune
}

// Frames returns the number of frames in the sheet
func (t *Texture) Frames() int {
	return len(t.frames)
}

// Glyph returns the rune at cell (x, y) of frame, out of range cells are transparent
func (t *Texture) Glyph(frame, x, y int) rune {
	if frame < 0 || frame >= len(t.frames) || y < 0 || y >= t.Height || x < 0 || x >= t.Width {
		return ' '
	}
	return t.frames[frame][y][x]
}

// TextureDef is the declared form of a glyph sheet
type TextureDef struct {
	Color  string     `yaml:"color"`
	Tile   bool       `yaml:"tile"`
	Frames [][]string `yaml:"frames"`
}

// TextureSet is a collection of decoded glyph sheets keyed by asset path
type TextureSet map[string]TextureDef

// ParseTextures decodes a YAML texture sheet document
func ParseTextures(data []byte) (TextureSet, error) {
	set := make(TextureSet)
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("decode textures: %w", err)
	}
	for name, def := range set {
		if _, _, err := def.size(); err != nil {
			return nil, fmt.Errorf("texture %q: %w", name, err)
		}
	}
	return set, nil
}

func (d TextureDef) size() (width, height int, err error) {
	if len(d.Frames) == 0 {
		return 0, 0, fmt.Errorf("no frames")
	}
	height = len(d.Frames[0])
	if height == 0 {
		return 0, 0, fmt.Errorf("empty frame")
	}
	width = len([]rune(d.Frames[0][0]))
	for i, frame := range d.Frames {
		if len(frame) != height {
			return 0, 0, fmt.Errorf("frame %d has %d rows, want %d", i, len(frame), height)
		}
		for j, row := range frame {
			if n := len([]rune(row)); n != width {
				return 0, 0, fmt.Errorf("frame %d row %d has %d cells, want %d", i, j, n, width)
			}
		}
	}
	return width, height, nil
}

// TextureLoader returns a cache loader resolving keys against the set
func TextureLoader(set TextureSet) Loader[Filter, *Texture] {
	return func(key string, filter Filter) (*Texture, error) {
		def, ok := set[key]
		if !ok {
			return nil, fmt.Errorf("texture %q: %w", key, ErrNotFound)
		}
		width, height, err := def.size()
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", key, err)
		}

		tex := &Texture{
			Name:   key,
			Color:  def.Color,
			Tile:   def.Tile,
			Filter: filter,
			Width:  width,
			Height: height,
			frames: make([][][]rune, len(def.Frames)),
		}
		for i, frame := range def.Frames {
			tex.frames[i] = make([][]rune, height)
			for j, row := range frame {
				tex.frames[i][j] = []rune(row)
			}
		}
		return tex, nil
	}
}
