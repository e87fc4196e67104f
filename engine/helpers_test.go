package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/skirmish/asset"
	"github.com/lixenwraith/skirmish/audio"
	"github.com/lixenwraith/skirmish/vmath"
)

type fakeSource struct {
	plays   int
	playing bool
	closed  bool
}

func (s *fakeSource) Play()           { s.plays++; s.playing = true }
func (s *fakeSource) IsPlaying() bool { return s.playing }
func (s *fakeSource) Close()          { s.closed = true }

// fakeAudio keeps sources playing until a test stops them
type fakeAudio struct {
	sources []*fakeSource
}

func (d *fakeAudio) NewSource(buf *asset.Ref[*audio.Buffer], _ float32) audio.Player {
	buf.Release()
	s := &fakeSource{}
	d.sources = append(d.sources, s)
	return s
}

type fakePointer struct {
	pos vmath.Vec2
}

func (p fakePointer) Normalized() vmath.Vec2 { return p.pos }
func (p fakePointer) PixelSize() vmath.Vec2  { return vmath.Vec2{0.001, 0.001} }

type fakeKeys struct {
	calls        int
	pausedDuring bool
}

func (k *fakeKeys) ReleaseAll(g *Game) {
	k.calls++
	k.pausedDuring = g.Paused
}

// newTestGame builds the default scene: background, player, enemy and the controls text
func newTestGame(t *testing.T) (*Game, *fakeAudio) {
	t.Helper()

	textures, err := asset.ParseTextures([]byte(asset.DefaultTextures))
	require.NoError(t, err)
	manifest, err := asset.ParseManifest([]byte(asset.DefaultPrefabs))
	require.NoError(t, err)

	dev := &fakeAudio{}
	log := zap.NewNop()
	assets := NewAssets(textures, 1, dev, log)
	factory := NewFactory(manifest, assets, log)
	require.NoError(t, factory.Preload())

	g := NewGame(assets, factory, log)
	require.NoError(t, factory.Populate(g.Scene))
	t.Cleanup(g.Close)
	return g, dev
}

func enemy(t *testing.T, g *Game) *Entity {
	t.Helper()
	e := g.Scene.At(LayerSpaceship, 1)
	require.NotNil(t, e)
	return e
}
