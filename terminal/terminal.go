package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lixenwraith/skirmish/constant"
	"github.com/lixenwraith/skirmish/engine"
	"github.com/lixenwraith/skirmish/input"
)

// Reset sequences: mouse reporting off, cursor on, leave alternate screen, attributes off
const resetSequence = "\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l\x1b[?25h\x1b[?1049l\x1b[0m"

var savedState atomic.Pointer[term.State]

// Service owns the screen, polls its events and feeds them to the game
type Service struct {
	screen  tcell.Screen
	clock   engine.Clock
	events  chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
	done    bool
	closed  atomic.Bool

	game    *engine.Game
	keys    *input.Dispatcher
	pointer *input.Pointer
	held    map[input.Key]*heldKey

	log *zap.Logger
}

// New wraps a screen that has not been initialized yet
func New(screen tcell.Screen, clock engine.Clock, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		screen: screen,
		clock:  clock,
		events: make(chan tcell.Event, constant.EventQueueSize),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
		held:   make(map[input.Key]*heldKey),
		log:    log.Named("terminal"),
	}
}

// NewScreen opens the controlling terminal, recording its mode for EmergencyReset
func NewScreen() (tcell.Screen, error) {
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		if state, err := term.GetState(fd); err == nil {
			savedState.Store(state)
		}
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return screen, nil
}

// Init enters the screen with mouse and focus reporting enabled
func (s *Service) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	s.screen.EnableMouse(tcell.MouseMotionEvents)
	s.screen.EnableFocus()
	s.screen.HideCursor()
	s.screen.SetStyle(tcell.StyleDefault)
	s.screen.Clear()
	return nil
}

// Attach connects the game, its key dispatcher and pointer
func (s *Service) Attach(g *engine.Game, keys *input.Dispatcher, pointer *input.Pointer) {
	s.game = g
	s.keys = keys
	s.pointer = pointer
	s.resize()
}

// Screen returns the wrapped screen
func (s *Service) Screen() tcell.Screen {
	return s.screen
}

// Start launches the polling goroutine
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	go s.pollLoop()
}

// pollLoop forwards screen events until the screen finishes or Stop is called
func (s *Service) pollLoop() {
	defer close(s.doneCh)

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ev := s.screen.PollEvent()
		if ev == nil {
			s.closed.Store(true)
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}

		select {
		case s.events <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop ends polling and restores the terminal, safe to call more than once
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return
	}
	s.done = true

	if s.running {
		s.running = false
		close(s.stopCh)
		// wake PollEvent so the goroutine sees stopCh
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-s.doneCh
	}
	s.screen.Fini()
}

// ShouldClose reports whether the screen went away
func (s *Service) ShouldClose() bool {
	return s.closed.Load()
}

// EmergencyReset restores the terminal after a crash, best effort
func EmergencyReset(w io.Writer) {
	_, _ = io.WriteString(w, resetSequence)
	if f, ok := w.(*os.File); ok {
		_ = f.Sync()
	}
	if state := savedState.Load(); state != nil {
		_ = term.Restore(int(os.Stdin.Fd()), state)
	}
}
