package audio

import "github.com/lixenwraith/skirmish/asset"

// NullDevice discards audio, playback completes instantly
type NullDevice struct {
	Sources []*NullSource
}

// NewSource records a silent source
func (d *NullDevice) NewSource(buf *asset.Ref[*Buffer], gain float32) Player {
	s := &NullSource{Buffer: buf, Gain: gain}
	d.Sources = append(d.Sources, s)
	return s
}

// NullSource counts plays and never reports itself playing
type NullSource struct {
	Buffer *asset.Ref[*Buffer]
	Gain   float32
	Plays  int
	Closed bool
}

func (s *NullSource) Play() { s.Plays++ }

func (s *NullSource) IsPlaying() bool { return false }

func (s *NullSource) Close() {
	s.Buffer.Release()
	s.Buffer = nil
	s.Closed = true
}
