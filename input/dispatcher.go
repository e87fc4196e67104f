package input

import (
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/skirmish/engine"
)

// Handler reacts to a key transition
type Handler func(g *engine.Game, key Key, action Action, mods ModMask)

// Dispatcher routes key events to handlers and tracks which keys are held
type Dispatcher struct {
	handlers map[Key]Handler
	held     map[Key]bool
	log      *zap.Logger
}

// NewDispatcher creates a dispatcher with the default bindings
func NewDispatcher(log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Dispatcher{
		handlers: make(map[Key]Handler),
		held:     make(map[Key]bool),
		log:      log.Named("input"),
	}
	move := horizontal.handler(d)
	d.Bind(KeyLeft, move)
	d.Bind(KeyRight, move)
	move = vertical.handler(d)
	d.Bind(KeyUp, move)
	d.Bind(KeyDown, move)
	d.Bind(KeySpace, fireHandler)
	d.Bind(KeyF3, toggleHandler(func(g *engine.Game) { g.Render.DebugInfo = !g.Render.DebugInfo }))
	d.Bind(KeyF6, toggleHandler(func(g *engine.Game) { g.VSync = !g.VSync }))
	d.Bind(KeyF7, toggleHandler(func(g *engine.Game) { g.Render.AABBs = !g.Render.AABBs }))
	d.Bind(KeyEscape, quitHandler)
	d.Bind(KeyCtrlC, quitHandler)
	return d
}

// Bind sets the handler for key, replacing any previous binding
func (d *Dispatcher) Bind(key Key, h Handler) {
	d.handlers[key] = h
}

// Dispatch delivers a raw event: repeats are dropped, the handler runs,
// then the held state is recorded
func (d *Dispatcher) Dispatch(g *engine.Game, ev Event) {
	if ev.Action != Press && ev.Action != Release {
		return
	}
	d.log.Debug("key", zap.Stringer("key", ev.Key), zap.Stringer("action", ev.Action))

	if h, ok := d.handlers[ev.Key]; ok {
		h(g, ev.Key, ev.Action, ev.Mods)
	}
	d.held[ev.Key] = ev.Action == Press
}

// Held reports whether key is currently down
func (d *Dispatcher) Held(key Key) bool {
	return d.held[key]
}

// ReleaseAll marks every held key released and runs its release handler
func (d *Dispatcher) ReleaseAll(g *engine.Game) {
	for _, key := range slices.Sorted(maps.Keys(d.held)) {
		if !d.held[key] {
			continue
		}
		d.held[key] = false
		if h, ok := d.handlers[key]; ok {
			h(g, key, Release, 0)
		}
	}
}
