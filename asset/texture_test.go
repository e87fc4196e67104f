package asset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTexturesParse(t *testing.T) {
	set, err := ParseTextures([]byte(DefaultTextures))
	require.NoError(t, err)

	load := TextureLoader(set)
	tests := []struct {
		name   string
		frames int
		width  int
		height int
	}{
		{"player", 4, 5, 3},
		{"ufo", 4, 7, 3},
		{"projectile", 1, 5, 3},
		{"explosion", 6, 5, 3},
		{"background", 1, 32, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex, err := load(tt.name, FilterNearest)
			require.NoError(t, err)
			assert.Equal(t, tt.frames, tex.Frames())
			assert.Equal(t, tt.width, tex.Width)
			assert.Equal(t, tt.height, tex.Height)
		})
	}
}

func TestTextureGlyph(t *testing.T) {
	set, err := ParseTextures([]byte("t:\n  frames:\n    - ['ab', 'cd']\n    - ['ef', 'gh']\n"))
	require.NoError(t, err)
	tex, err := TextureLoader(set)("t", FilterLinear)
	require.NoError(t, err)

	assert.Equal(t, 'a', tex.Glyph(0, 0, 0))
	assert.Equal(t, 'h', tex.Glyph(1, 1, 1))
	assert.Equal(t, ' ', tex.Glyph(2, 0, 0))
	assert.Equal(t, ' ', tex.Glyph(0, -1, 0))
	assert.Equal(t, FilterLinear, tex.Filter)
}

func TestParseTexturesRejectsRaggedFrames(t *testing.T) {
	_, err := ParseTextures([]byte("t:\n  frames:\n    - ['ab', 'c']\n"))
	assert.Error(t, err)
}

func TestTextureLoaderUnknown(t *testing.T) {
	_, err := TextureLoader(TextureSet{})("nope", FilterNearest)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFontLoader(t *testing.T) {
	f, err := FontLoader("russo_one", struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "russo_one", f.Name)
	assert.True(t, f.Bold)

	_, err = FontLoader("comic", struct{}{})
	assert.True(t, errors.Is(err, ErrUnknownFont))
}

func TestGenSpriteQuads(t *testing.T) {
	m := GenSpriteQuads(6)
	assert.Equal(t, 36, m.Indices)
	for i := 0; i < 6; i++ {
		off, n := FrameRange(i)
		assert.True(t, m.Covers(off, n))
		assert.Equal(t, i, m.QuadAt(off))
	}
	off, n := FrameRange(6)
	assert.False(t, m.Covers(off, n))
	assert.Equal(t, 1, GenSpriteQuads(0).Quads)
}
