package audio

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/skirmish/asset"
	"github.com/lixenwraith/skirmish/constant"
)

// ErrUnknownSound is returned for a sound name with no generator
var ErrUnknownSound = errors.New("unknown sound")

// Buffer is a generated mono sample buffer at unity gain
type Buffer struct {
	Name    string
	Rate    beep.SampleRate
	samples floatBuffer
}

// Len returns the buffer length in samples
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Duration returns the playback length
func (b *Buffer) Duration() time.Duration {
	return b.Rate.D(len(b.samples))
}

// Streamer returns a fresh stereo stream positioned at the start
func (b *Buffer) Streamer() beep.StreamSeeker {
	return &bufferStreamer{buf: b.samples}
}

// bufferStreamer plays a mono buffer on both channels
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error { return nil }

func (s *bufferStreamer) Len() int { return len(s.buf) }

func (s *bufferStreamer) Position() int { return s.pos }

func (s *bufferStreamer) Seek(p int) error {
	if p < 0 || p > len(s.buf) {
		return fmt.Errorf("seek %d out of range [0, %d]", p, len(s.buf))
	}
	s.pos = p
	return nil
}

var generators = map[string]func(*rand.Rand) floatBuffer{
	"laser":            generateLaser,
	"explosion_crunch": generateExplosionCrunch,
}

// NewBufferLoader returns a cache loader synthesising named sounds
// seed fixes the noise so repeated runs sound identical
func NewBufferLoader(seed int64) asset.Loader[struct{}, *Buffer] {
	rng := rand.New(rand.NewSource(seed))
	return func(name string, _ struct{}) (*Buffer, error) {
		gen, ok := generators[name]
		if !ok {
			return nil, fmt.Errorf("sound %q: %w", name, ErrUnknownSound)
		}
		return &Buffer{
			Name:    name,
			Rate:    beep.SampleRate(constant.AudioSampleRate),
			samples: gen(rng),
		}, nil
	}
}
