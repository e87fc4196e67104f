package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/skirmish/asset"
	"github.com/lixenwraith/skirmish/audio"
	"github.com/lixenwraith/skirmish/constant"
	"github.com/lixenwraith/skirmish/engine"
	"github.com/lixenwraith/skirmish/vmath"
)

func newTestGame(t *testing.T) (*engine.Game, *Dispatcher, *audio.NullDevice) {
	t.Helper()

	textures, err := asset.ParseTextures([]byte(asset.DefaultTextures))
	require.NoError(t, err)
	manifest, err := asset.ParseManifest([]byte(asset.DefaultPrefabs))
	require.NoError(t, err)

	dev := &audio.NullDevice{}
	log := zap.NewNop()
	assets := engine.NewAssets(textures, 1, dev, log)
	factory := engine.NewFactory(manifest, assets, log)
	require.NoError(t, factory.Preload())

	g := engine.NewGame(assets, factory, log)
	require.NoError(t, factory.Populate(g.Scene))
	t.Cleanup(g.Close)

	d := NewDispatcher(log)
	g.Keys = d
	return g, d, dev
}

func press(g *engine.Game, d *Dispatcher, k Key) {
	d.Dispatch(g, Event{Key: k, Action: Press})
}

func release(g *engine.Game, d *Dispatcher, k Key) {
	d.Dispatch(g, Event{Key: k, Action: Release})
}

func TestHorizontalMovement(t *testing.T) {
	g, d, _ := newTestGame(t)
	player := g.Scene.Player()
	require.NotNil(t, player)

	press(g, d, KeyLeft)
	assert.Equal(t, -constant.PlayerHorizontalSpeed, player.Motion.Velocity.X())
	assert.Equal(t, -constant.PlayerHorizontalAccel, player.Motion.Acceleration.X())
	assert.True(t, d.Held(KeyLeft))

	press(g, d, KeyRight)
	assert.Equal(t, constant.PlayerHorizontalSpeed, player.Motion.Velocity.X())

	// Left is still down, so releasing right reverts to moving left
	release(g, d, KeyRight)
	assert.Equal(t, -constant.PlayerHorizontalSpeed, player.Motion.Velocity.X())
	assert.Equal(t, -constant.PlayerHorizontalAccel, player.Motion.Acceleration.X())
	assert.False(t, d.Held(KeyRight))

	release(g, d, KeyLeft)
	assert.Zero(t, player.Motion.Velocity.X())
	assert.Zero(t, player.Motion.Acceleration.X())
}

func TestVerticalMovement(t *testing.T) {
	g, d, _ := newTestGame(t)
	player := g.Scene.Player()

	press(g, d, KeyUp)
	assert.Equal(t, constant.PlayerVerticalSpeed, player.Motion.Velocity.Y())
	assert.Equal(t, constant.PlayerVerticalAccel, player.Motion.Acceleration.Y())
	assert.Zero(t, player.Motion.Velocity.X())

	release(g, d, KeyUp)
	press(g, d, KeyDown)
	assert.Equal(t, -constant.PlayerVerticalSpeed, player.Motion.Velocity.Y())

	release(g, d, KeyDown)
	assert.Zero(t, player.Motion.Velocity.Y())
}

func TestRepeatIgnored(t *testing.T) {
	g, d, _ := newTestGame(t)
	player := g.Scene.Player()

	d.Dispatch(g, Event{Key: KeyLeft, Action: Repeat})
	assert.Zero(t, player.Motion.Velocity.X())
	assert.False(t, d.Held(KeyLeft))
}

func TestFireSpawnsPair(t *testing.T) {
	g, d, dev := newTestGame(t)
	player := g.Scene.Player()
	origin := player.Transform.Position

	press(g, d, KeySpace)
	projectiles := g.Scene.Layers[engine.LayerProjectile]
	require.Len(t, projectiles, 2)

	left, right := projectiles[0], projectiles[1]
	assert.InDelta(t, origin.X()-0.062+0.005, left.Transform.Position.X(), 1e-6)
	assert.InDelta(t, origin.Y()+0.125, left.Transform.Position.Y(), 1e-6)
	assert.InDelta(t, origin.X()+0.062, right.Transform.Position.X(), 1e-6)
	assert.Equal(t, left.Transform.Position.Y(), right.Transform.Position.Y())
	assert.Equal(t, right.Transform, right.PrevTransform)

	// The pair shares one source and plays it once
	require.Len(t, dev.Sources, 1)
	assert.Same(t, left.Sound, right.Sound)
	assert.Equal(t, 1, dev.Sources[0].Plays)

	assert.Contains(t, g.TimedActions, constant.FireSlot)

	release(g, d, KeySpace)
	assert.NotContains(t, g.TimedActions, constant.FireSlot)
}

func TestHeldFireRepeats(t *testing.T) {
	g, d, _ := newTestGame(t)

	press(g, d, KeySpace)
	var now float32
	for range 16 {
		now += constant.Timestep
		g.Update(constant.Timestep, now)
	}
	// Initial pair plus one timed volley after 0.15s
	assert.Len(t, g.Scene.Layers[engine.LayerProjectile], 4)
}

func TestToggles(t *testing.T) {
	g, d, _ := newTestGame(t)
	require.True(t, g.VSync)

	tests := []struct {
		key Key
		get func() bool
	}{
		{KeyF3, func() bool { return g.Render.DebugInfo }},
		{KeyF6, func() bool { return g.VSync }},
		{KeyF7, func() bool { return g.Render.AABBs }},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			before := tt.get()
			press(g, d, tt.key)
			assert.Equal(t, !before, tt.get())
			release(g, d, tt.key)
			assert.Equal(t, !before, tt.get(), "release must not toggle")
		})
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []Key{KeyEscape, KeyCtrlC} {
		g, d, _ := newTestGame(t)
		press(g, d, k)
		assert.True(t, g.QuitRequested(), k.String())
	}
}

func TestPauseReleasesHeldKeys(t *testing.T) {
	g, d, _ := newTestGame(t)
	player := g.Scene.Player()

	press(g, d, KeyLeft)
	press(g, d, KeySpace)
	g.Pause()

	assert.True(t, g.Paused)
	assert.False(t, d.Held(KeyLeft))
	assert.False(t, d.Held(KeySpace))
	assert.Zero(t, player.Motion.Velocity.X())
	assert.NotContains(t, g.TimedActions, constant.FireSlot)
}

func TestUnboundKey(t *testing.T) {
	g, d, _ := newTestGame(t)
	assert.NotPanics(t, func() { press(g, d, KeyNone) })
	assert.True(t, d.Held(KeyNone))
}

func TestLetterbox(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want Viewport
	}{
		{"exact", 1280, 720, Viewport{0, 0, 1280, 720}},
		{"tall", 1280, 1000, Viewport{0, 140, 1280, 720}},
		{"wide", 2000, 720, Viewport{360, 0, 1280, 720}},
		{"empty", 0, 10, Viewport{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Letterbox(tt.w, tt.h)
			assert.InDelta(t, tt.want.OffsetX, got.OffsetX, 1e-3)
			assert.InDelta(t, tt.want.OffsetY, got.OffsetY, 1e-3)
			assert.InDelta(t, tt.want.Width, got.Width, 1e-3)
			assert.InDelta(t, tt.want.Height, got.Height, 1e-3)
		})
	}
}

func TestPointerNormalization(t *testing.T) {
	p := NewPointer(1280, 1000)

	p.MoveCursor(640, 500)
	assert.InDelta(t, 0, p.Normalized().X(), 1e-5)
	assert.InDelta(t, 0, p.Normalized().Y(), 1e-5)

	p.MoveCursor(0, 140)
	assert.InDelta(t, -constant.AspectRatio, p.Normalized().X(), 1e-5)
	assert.InDelta(t, 1, p.Normalized().Y(), 1e-5)

	p.MoveCursor(1280, 860)
	assert.InDelta(t, constant.AspectRatio, p.Normalized().X(), 1e-5)
	assert.InDelta(t, -1, p.Normalized().Y(), 1e-5)

	assert.InDelta(t, 1.0/1280, p.PixelSize().X(), 1e-9)
	assert.InDelta(t, 1.0/720, p.PixelSize().Y(), 1e-9)
}

func TestPointerResizeKeepsCursor(t *testing.T) {
	p := NewPointer(1280, 720)
	p.MoveCursor(640, 0)
	assert.InDelta(t, 0, p.Normalized().X(), 1e-5)

	p.Resize(2560, 720)
	// Cursor pixel now lands on the left bar edge of a centered viewport
	assert.InDelta(t, -constant.AspectRatio, p.Normalized().X(), 1e-5)
	assert.InDelta(t, 1.0/1280, p.PixelSize().X(), 1e-9)
	assert.Equal(t, vmath.Vec2{}, NewPointer(0, 0).PixelSize())
}
