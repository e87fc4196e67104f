package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/skirmish/constant"
)

// Window is the event source the loop polls between ticks
type Window interface {
	PollEvents()
	ShouldClose() bool
}

// Loop decouples the fixed simulation rate from the render rate
// Wall time accumulates into an update lag drained in whole ticks and a render lag
// drained once per render interval; the leftover update lag becomes the blend factor
type Loop struct {
	game     *Game
	window   Window
	renderer Renderer
	clock    Clock
	sleep    func(time.Duration)

	refreshRate float32

	last      time.Time
	epoch     float32
	updateLag float32
	renderLag float32

	Ticks  uint64
	Frames uint64
}

// NewLoop creates a loop starting at the clock's current time
// A nil sleep disables yielding between iterations
func NewLoop(g *Game, w Window, r Renderer, clock Clock, sleep func(time.Duration), refreshRate float32) *Loop {
	if refreshRate <= 0 {
		refreshRate = constant.DefaultRefreshRate
	}
	return &Loop{
		game:        g,
		window:      w,
		renderer:    r,
		clock:       clock,
		sleep:       sleep,
		refreshRate: refreshRate,
		last:        clock.Now(),
	}
}

// RenderInterval is the minimum time between renders, zero when vsync is off
func (l *Loop) RenderInterval() float32 {
	if !l.game.VSync {
		return 0
	}
	return 1 / (l.refreshRate + constant.RefreshRateBias)
}

// Epoch returns the simulated time elapsed across all ticks
func (l *Loop) Epoch() float32 {
	return l.epoch
}

// Alpha returns the current blend factor between the last two ticks
func (l *Loop) Alpha() float32 {
	return l.updateLag / constant.Timestep
}

// Iterate runs one loop iteration: ticks owed, an optional render, an optional sleep
func (l *Loop) Iterate() {
	now := l.clock.Now()
	loopTime := float32(now.Sub(l.last).Seconds())
	l.last = now

	l.updateLag += loopTime
	for l.updateLag >= constant.Timestep {
		l.window.PollEvents()
		l.game.Update(constant.Timestep, l.epoch)
		l.epoch += constant.Timestep
		l.updateLag -= constant.Timestep
		l.Ticks++
	}

	l.renderLag += loopTime
	interval := l.RenderInterval()
	if l.renderLag >= interval {
		l.renderer.Render(l.game, l.renderLag, l.Alpha())
		l.renderLag = 0
		l.Frames++
	}

	if l.sleep == nil {
		return
	}
	remaining := min(constant.Timestep-l.updateLag, interval-l.renderLag)
	budget := time.Duration(float64(remaining) * float64(time.Second))
	if budget > constant.MinLoopSleep {
		l.sleep(time.Duration(float64(budget) * constant.LoopSleepFraction))
	}
}

// Run iterates until the window closes, the game quits or ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	l.game.Log.Info("loop started",
		zap.Float32("timestep", constant.Timestep),
		zap.Float32("refresh_rate", l.refreshRate))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if l.window.ShouldClose() || l.game.QuitRequested() {
			l.game.Log.Info("loop stopped", zap.Uint64("ticks", l.Ticks), zap.Uint64("frames", l.Frames))
			return nil
		}
		l.Iterate()
	}
}
