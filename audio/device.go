package audio

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/skirmish/asset"
	"github.com/lixenwraith/skirmish/constant"
)

// Player is a playable source bound to one buffer
type Player interface {
	Play()
	IsPlaying() bool
	Close()
}

// Device owns the speaker and mixes every playing source
type Device struct {
	rate  beep.SampleRate
	mixer *beep.Mixer
	log   *zap.Logger
}

// NewDevice initialises the speaker and starts the mixer
func NewDevice(log *zap.Logger) (*Device, error) {
	if log == nil {
		log = zap.NewNop()
	}
	rate := beep.SampleRate(constant.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}

	d := &Device{
		rate:  rate,
		mixer: &beep.Mixer{},
		log:   log.Named("audio"),
	}
	speaker.Play(d.mixer)
	d.log.Info("audio device ready", zap.Int("sample_rate", int(rate)))
	return d, nil
}

// NewSource binds buf at gain, the source takes ownership of the buffer reference
func (d *Device) NewSource(buf *asset.Ref[*Buffer], gain float32) Player {
	return &Source{device: d, buf: buf, gain: gain}
}

// Close silences every source
func (d *Device) Close() {
	speaker.Lock()
	d.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
}

func (d *Device) add(s beep.Streamer) {
	speaker.Lock()
	d.mixer.Add(s)
	speaker.Unlock()
}

// Source plays its buffer through the device mixer
// The active count is decremented on the speaker goroutine when a playback ends
type Source struct {
	device *Device
	buf    *asset.Ref[*Buffer]
	gain   float32
	active atomic.Int32
}

// Play starts a new playback, overlapping any still running
func (s *Source) Play() {
	if s.buf == nil || !s.buf.Alive() {
		return
	}
	s.active.Add(1)
	stream := newVolume(s.buf.Get().Streamer(), float64(s.gain))
	s.device.add(beep.Seq(stream, beep.Callback(func() {
		s.active.Add(-1)
	})))
}

// IsPlaying reports whether any playback of this source is still audible
func (s *Source) IsPlaying() bool {
	return s.active.Load() > 0
}

// Close drops the buffer reference, running playbacks finish on their own stream
func (s *Source) Close() {
	s.buf.Release()
	s.buf = nil
}

// newVolume maps linear gain onto a base-2 volume effect
// math.Log2(0) is -Inf, so 0 gain is made silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}
