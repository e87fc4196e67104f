package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/skirmish/asset"
	"github.com/lixenwraith/skirmish/audio"
	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/constant"
	"github.com/lixenwraith/skirmish/vmath"
)

// Source is a playable audio source handle
type Source = audio.Player

// AudioDevice creates sources for loaded buffers
type AudioDevice interface {
	NewSource(buf *asset.Ref[*audio.Buffer], gain float32) audio.Player
}

// Renderer draws the scene, alpha blends previous and current tick transforms
type Renderer interface {
	Render(g *Game, frameTime, alpha float32)
}

// KeyReleaser synthesises releases for every held key through the input handlers
type KeyReleaser interface {
	ReleaseAll(g *Game)
}

// Pointer reports the cursor in camera space
type Pointer interface {
	Normalized() vmath.Vec2
	PixelSize() vmath.Vec2
}

// TimedAction is a repeating callback driven by simulation time
type TimedAction = component.TimedAction[*Game]

// RenderOptions are the debug toggles
type RenderOptions struct {
	DebugInfo bool
	AABBs     bool
}

// Assets groups the session resource caches
type Assets struct {
	Textures *asset.Cache[asset.Filter, *asset.Texture]
	Fonts    *asset.Cache[struct{}, *asset.Font]
	Sounds   *asset.Cache[struct{}, *audio.Buffer]
	Audio    AudioDevice
}

// NewAssets builds caches over the given loaders
func NewAssets(textures asset.TextureSet, soundSeed int64, device AudioDevice, log *zap.Logger) *Assets {
	return &Assets{
		Textures: asset.NewCache("textures", asset.TextureLoader(textures), nil, log),
		Fonts:    asset.NewCache("fonts", asset.FontLoader, nil, log),
		Sounds:   asset.NewCache("sounds", audio.NewBufferLoader(soundSeed), nil, log),
		Audio:    device,
	}
}

// Close drops the caches' references
func (a *Assets) Close() {
	a.Textures.Close()
	a.Fonts.Close()
	a.Sounds.Close()
}

// Game is the simulation context, owned by the loop thread
type Game struct {
	Scene   *Scene
	Assets  *Assets
	Factory *Factory

	Paused bool
	VSync  bool
	Hover  bool
	Render RenderOptions

	// ScreenAABB is the visible camera-space area
	ScreenAABB vmath.AABB

	TimedActions map[int]*TimedAction

	Pointer Pointer
	Keys    KeyReleaser
	FPS     *FPSCounter
	Log     *zap.Logger

	quit bool
}

// NewGame wires an empty scene to its factory
func NewGame(assets *Assets, factory *Factory, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		Scene:        NewScene(),
		Assets:       assets,
		Factory:      factory,
		VSync:        true,
		ScreenAABB:   vmath.Box(-constant.AspectRatio, -1, constant.AspectRatio, 1),
		TimedActions: make(map[int]*TimedAction),
		FPS:          NewFPSCounter(constant.FPSAveragePeriod),
		Log:          log,
	}
}

// SetTimedAction registers action in slot, replacing any previous one
func (g *Game) SetTimedAction(slot int, duration float32, action func(g *Game, dt, time float32)) {
	g.TimedActions[slot] = component.NewTimedAction(duration, action)
}

// CancelTimedAction removes the action in slot
func (g *Game) CancelTimedAction(slot int) {
	delete(g.TimedActions, slot)
}

// RequestQuit asks the loop to stop after the current iteration
func (g *Game) RequestQuit() {
	g.quit = true
}

// QuitRequested reports whether RequestQuit was called
func (g *Game) QuitRequested() bool {
	return g.quit
}

// Spawn adds a new entity built from prefab name to layer l
func (g *Game) Spawn(l Layer, name string, position vmath.Vec2) (*Entity, error) {
	e, err := g.Factory.SpawnAt(name, position)
	if err != nil {
		return nil, err
	}
	i := g.Scene.Add(l, e)
	g.Log.Debug("spawned", zap.String("prefab", name), zap.Stringer("layer", l), zap.Int("slot", i))
	return g.Scene.At(l, i), nil
}

// Close releases the scene and every cached resource
func (g *Game) Close() {
	g.Scene.Clear()
	if g.Factory != nil {
		g.Factory.Close()
	}
	if g.Assets != nil {
		g.Assets.Close()
	}
}
