package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frames(durations ...float32) []SpriteFrame {
	out := make([]SpriteFrame, len(durations))
	for i, d := range durations {
		out[i] = SpriteFrame{Duration: d, Offset: 6 * i, Count: 6}
	}
	return out
}

func TestSpriteAdvanceSingleStep(t *testing.T) {
	s := NewSpriteAnimation(frames(0.25, 0.25, 0.5), 0)

	s.Advance(0.125)
	assert.Equal(t, 0, s.Current)

	s.Advance(0.125)
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, float32(0), s.Elapsed)
	assert.Equal(t, 6, s.Frame().Offset)
}

func TestSpriteAdvanceNoDrift(t *testing.T) {
	tests := []struct {
		name      string
		durations []float32
		total     float32
		step      float32
	}{
		{"uniform", []float32{0.25, 0.25, 0.25, 0.25}, 3.5, 0.125},
		{"mixed", []float32{0.5, 0.25, 0.125}, 4, 0.0625},
		{"explosion-like", []float32{0.125, 0.125, 0.125, 0.25}, 0.625, 0.03125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			many := NewSpriteAnimation(frames(tt.durations...), 0)
			for elapsed := float32(0); elapsed < tt.total; elapsed += tt.step {
				many.Advance(tt.step)
			}
			once := NewSpriteAnimation(frames(tt.durations...), 0)
			once.Advance(tt.total)

			assert.Equal(t, once.Current, many.Current)
			assert.Equal(t, once.Cycles, many.Cycles)
			assert.InDelta(t, once.Elapsed, many.Elapsed, 1e-6)
		})
	}
}

func TestSpriteExpiry(t *testing.T) {
	s := NewSpriteAnimation(frames(0.25, 0.25), 1)
	assert.False(t, s.Advance(0.25))
	assert.False(t, s.Expired())

	assert.True(t, s.Advance(0.25), "completing the only cycle expires")
	assert.True(t, s.Expired())
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 1, s.Cycles)

	// already expired, not reported again
	assert.False(t, s.Advance(0.25))
}

func TestSpriteInfiniteNeverExpires(t *testing.T) {
	s := NewSpriteAnimation(frames(0.25), 0)
	s.Advance(100)
	assert.Equal(t, 400, s.Cycles)
	assert.False(t, s.Expired())
}

func TestSpriteNonPositiveDuration(t *testing.T) {
	s := NewSpriteAnimation(frames(0, 0, 0), 0)
	s.Advance(0.01)
	assert.Equal(t, 1, s.Current)
	s.Advance(0.01)
	s.Advance(0.01)
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 1, s.Cycles)
}

func TestSpriteResetAndClone(t *testing.T) {
	s := NewSpriteAnimation(frames(0.25, 0.25), 0)
	s.Advance(0.375)

	c := s.Clone()
	require.NotNil(t, c)
	c.Frames[0].Duration = 9
	assert.Equal(t, float32(0.25), s.Frames[0].Duration)

	s.Reset()
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, float32(0), s.Elapsed)
	assert.Equal(t, 1, c.Current)

	var empty *SpriteAnimation
	assert.Nil(t, empty.Clone())
}
