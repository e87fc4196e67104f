package component

// SpriteFrame is one animation frame: how long it shows and which mesh indices draw it
type SpriteFrame struct {
	Duration float32
	Offset   int
	Count    int
}

// SpriteAnimation cycles through frames on elapsed time
// MaxCycles of 0 loops forever
type SpriteAnimation struct {
	Frames    []SpriteFrame
	Current   int
	Elapsed   float32
	Cycles    int
	MaxCycles int
}

// NewSpriteAnimation copies frames into a fresh animation at frame 0
func NewSpriteAnimation(frames []SpriteFrame, maxCycles int) *SpriteAnimation {
	return &SpriteAnimation{
		Frames:    append([]SpriteFrame(nil), frames...),
		MaxCycles: maxCycles,
	}
}

// Advance accumulates dt and steps through every frame whose duration has elapsed,
// carrying the remainder forward
// A frame with non-positive duration advances exactly one frame per call
// Returns true if this call completed the final cycle
func (s *SpriteAnimation) Advance(dt float32) bool {
	if len(s.Frames) == 0 {
		return false
	}
	wasExpired := s.Expired()

	s.Elapsed += dt
	for {
		d := s.Frames[s.Current].Duration
		if d <= 0 {
			s.step()
			break
		}
		if s.Elapsed < d {
			break
		}
		s.Elapsed -= d
		s.step()
	}

	return !wasExpired && s.Expired()
}

func (s *SpriteAnimation) step() {
	s.Current++
	if s.Current >= len(s.Frames) {
		s.Current = 0
		s.Cycles++
	}
}

// Expired reports whether a bounded animation has finished all its cycles
func (s *SpriteAnimation) Expired() bool {
	return s.MaxCycles > 0 && s.Cycles >= s.MaxCycles
}

// Frame returns the frame currently shown
func (s *SpriteAnimation) Frame() SpriteFrame {
	if len(s.Frames) == 0 {
		return SpriteFrame{}
	}
	return s.Frames[s.Current]
}

// Reset rewinds to the first frame and clears the cycle count
func (s *SpriteAnimation) Reset() {
	s.Current = 0
	s.Elapsed = 0
	s.Cycles = 0
}

// Clone returns an independent copy sharing no frame storage
func (s *SpriteAnimation) Clone() *SpriteAnimation {
	if s == nil {
		return nil
	}
	c := *s
	c.Frames = append([]SpriteFrame(nil), s.Frames...)
	return &c
}
