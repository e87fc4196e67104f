package terminal

import (
	"maps"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/skirmish/constant"
	"github.com/lixenwraith/skirmish/input"
)

// heldKey tracks a key the terminal reported recently, it is released once the deadline passes
type heldKey struct {
	mods     input.ModMask
	deadline time.Time
}

var keyMap = map[tcell.Key]input.Key{
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyF3:     input.KeyF3,
	tcell.KeyF6:     input.KeyF6,
	tcell.KeyF7:     input.KeyF7,
	tcell.KeyEscape: input.KeyEscape,
	tcell.KeyCtrlC:  input.KeyCtrlC,
}

// TranslateKey maps a tcell key event to a game key
func TranslateKey(ev *tcell.EventKey) (input.Key, input.ModMask) {
	var mods input.ModMask
	m := ev.Modifiers()
	if m&tcell.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= input.ModAlt
	}

	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return input.KeySpace, mods
		}
		return input.KeyNone, mods
	}
	return keyMap[ev.Key()], mods
}

// PollEvents drains queued events into the game, then releases keys that stopped repeating
func (s *Service) PollEvents() {
	for {
		select {
		case ev := <-s.events:
			s.handle(ev)
		default:
			s.expireKeys()
			return
		}
	}
}

func (s *Service) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev)

	case *tcell.EventMouse:
		if s.pointer == nil {
			return
		}
		x, y := ev.Position()
		s.pointer.MoveCursor(
			(float32(x)+0.5)*constant.CellPixelWidth,
			(float32(y)+0.5)*constant.CellPixelHeight,
		)

	case *tcell.EventFocus:
		if s.game == nil {
			return
		}
		if ev.Focused {
			s.game.Resume()
		} else {
			s.game.Pause()
		}

	case *tcell.EventResize:
		s.resize()
		s.screen.Sync()
	}
}

func (s *Service) handleKey(ev *tcell.EventKey) {
	key, mods := TranslateKey(ev)
	if key == input.KeyNone || s.keys == nil || s.game == nil {
		return
	}
	now := s.clock.Now()

	// Any event for a key still pending release is autorepeat, even after
	// Pause released it in the dispatcher, which then drops the repeat
	if h, ok := s.held[key]; ok {
		h.deadline = now.Add(constant.KeyReleaseRepeatTimeout)
		h.mods = mods
		s.keys.Dispatch(s.game, input.Event{Key: key, Action: input.Repeat, Mods: mods})
		return
	}

	s.held[key] = &heldKey{mods: mods, deadline: now.Add(constant.KeyReleaseInitialTimeout)}
	s.keys.Dispatch(s.game, input.Event{Key: key, Action: input.Press, Mods: mods})
}

// expireKeys synthesizes releases in key order for every key past its deadline
func (s *Service) expireKeys() {
	if len(s.held) == 0 {
		return
	}
	now := s.clock.Now()
	for _, key := range slices.Sorted(maps.Keys(s.held)) {
		h := s.held[key]
		if now.Before(h.deadline) {
			continue
		}
		delete(s.held, key)
		// Pause may already have released it
		if s.keys.Held(key) {
			s.keys.Dispatch(s.game, input.Event{Key: key, Action: input.Release, Mods: h.mods})
		}
	}
}

func (s *Service) resize() {
	w, h := s.screen.Size()
	if s.pointer != nil {
		s.pointer.Resize(w*constant.CellPixelWidth, h*constant.CellPixelHeight)
	}
	s.log.Debug("resize", zap.Int("cols", w), zap.Int("rows", h))
}
