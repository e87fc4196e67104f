package engine

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/skirmish/asset"
	"github.com/lixenwraith/skirmish/audio"
	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/constant"
	"github.com/lixenwraith/skirmish/vmath"
)

// soundDef is the buffer and gain each spawned entity gets its own source for
type soundDef struct {
	buf  *asset.Ref[*audio.Buffer]
	gain float32
}

// Factory builds entities from prefab templates
// Templates are resolved once, spawning clones them and attaches a fresh sound source
type Factory struct {
	manifest  *asset.Manifest
	assets    *Assets
	templates map[string]*Entity
	sounds    map[string]soundDef
	log       *zap.Logger
}

// NewFactory creates a factory over a validated manifest
func NewFactory(manifest *asset.Manifest, assets *Assets, log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Factory{
		manifest:  manifest,
		assets:    assets,
		templates: make(map[string]*Entity),
		sounds:    make(map[string]soundDef),
		log:       log.Named("factory"),
	}
}

// Preload warms the caches with every resource the manifest names, then resolves every prefab
// The first missing resource is returned as an error naming its cache
func (f *Factory) Preload() error {
	names := slices.Sorted(maps.Keys(f.manifest.Prefabs))
	for _, name := range names {
		if err := f.warm(f.manifest.Prefabs[name]); err != nil {
			return fmt.Errorf("prefab %q: %w", name, err)
		}
	}
	for _, name := range names {
		if _, err := f.template(name); err != nil {
			return err
		}
	}
	return nil
}

func (f *Factory) warm(p asset.Prefab) error {
	if p.Texture != nil {
		if err := f.assets.Textures.Preload(p.Texture.Path, p.Texture.Filter); err != nil {
			return err
		}
	}
	if p.Text != nil {
		if err := f.assets.Fonts.Preload(p.Text.Font, struct{}{}); err != nil {
			return err
		}
	}
	if p.Sound != nil {
		if err := f.assets.Sounds.Preload(p.Sound.Name, struct{}{}); err != nil {
			return err
		}
	}
	return nil
}

// Spawn returns a new entity built from prefab name
func (f *Factory) Spawn(name string) (Entity, error) {
	tmpl, err := f.template(name)
	if err != nil {
		return Entity{}, err
	}

	e := tmpl.Clone()
	if def, ok := f.sounds[name]; ok && f.assets.Audio != nil {
		src := f.assets.Audio.NewSource(def.buf.Retain(), def.gain)
		e.Sound = asset.NewRef(src, func(p audio.Player) { p.Close() })
	}
	return e, nil
}

// SpawnAt spawns name and places it at position
func (f *Factory) SpawnAt(name string, position vmath.Vec2) (Entity, error) {
	e, err := f.Spawn(name)
	if err != nil {
		return Entity{}, err
	}
	e.Place(position)
	return e, nil
}

// NewExplosion spawns an explosion at position
func (f *Factory) NewExplosion(position vmath.Vec2) (Entity, error) {
	return f.SpawnAt("explosion", position)
}

// NewProjectile spawns a player projectile at position
func (f *Factory) NewProjectile(position vmath.Vec2) (Entity, error) {
	return f.SpawnAt("projectile", position)
}

// Populate fills the scene with the manifest's initial entities
func (f *Factory) Populate(s *Scene) error {
	for l, names := range f.manifest.Scene.Layers() {
		for _, name := range names {
			e, err := f.Spawn(name)
			if err != nil {
				return err
			}
			s.Add(Layer(l), e)
		}
	}
	f.log.Debug("scene populated", zap.Int("entities", s.Count()))
	return nil
}

// Close releases the templates and their resource references
func (f *Factory) Close() {
	for name, tmpl := range f.templates {
		tmpl.Release()
		delete(f.templates, name)
	}
	for name, def := range f.sounds {
		def.buf.Release()
		delete(f.sounds, name)
	}
}

func (f *Factory) template(name string) (*Entity, error) {
	if tmpl, ok := f.templates[name]; ok {
		return tmpl, nil
	}
	p, ok := f.manifest.Prefab(name)
	if !ok {
		return nil, fmt.Errorf("prefab %q: %w", name, asset.ErrNotFound)
	}

	tmpl, err := f.build(name, p)
	if err != nil {
		return nil, fmt.Errorf("prefab %q: %w", name, err)
	}
	if err := tmpl.Validate(); err != nil {
		tmpl.Release()
		if def, ok := f.sounds[name]; ok {
			def.buf.Release()
			delete(f.sounds, name)
		}
		return nil, err
	}
	f.templates[name] = tmpl
	f.log.Debug("template built", zap.String("prefab", name))
	return tmpl, nil
}

func (f *Factory) build(name string, p asset.Prefab) (*Entity, error) {
	e := &Entity{
		Tag:       component.Tag(p.Tag),
		Transform: p.Transform,
		Motion: component.Motion{
			Velocity:     p.Velocity,
			Acceleration: p.Acceleration,
		},
		Color: p.Color,
	}
	if e.Tag == "" {
		e.Tag = component.Tag(name)
	}
	e.PrevTransform = e.Transform

	// release partially acquired handles on failure
	ok := false
	defer func() {
		if !ok {
			e.Release()
		}
	}()

	if p.Mesh != nil {
		e.Mesh = asset.NewRef(asset.GenSpriteQuads(p.Mesh.Quads), nil)
	}
	if p.Texture != nil {
		tex, found := f.assets.Textures.Load(p.Texture.Path, p.Texture.Filter)
		if !found {
			return nil, fmt.Errorf("texture %q: %w", p.Texture.Path, asset.ErrNotFound)
		}
		e.Texture = tex
	}
	if p.Sprite != nil {
		frames := make([]component.SpriteFrame, len(p.Sprite.Frames))
		for i, fd := range p.Sprite.Frames {
			frames[i] = component.SpriteFrame{Duration: fd.Duration, Offset: fd.Offset, Count: fd.Count}
		}
		e.Sprite = component.NewSpriteAnimation(frames, p.Sprite.MaxCycles)
	}
	if p.Text != nil {
		font, found := f.assets.Fonts.Load(p.Text.Font, struct{}{})
		if !found {
			return nil, fmt.Errorf("font %q: %w", p.Text.Font, asset.ErrUnknownFont)
		}
		e.Text = &component.TextFormat{
			Content:          p.Text.Content,
			Font:             font,
			Color:            p.Text.Color,
			OutlineColor:     p.Text.OutlineColor,
			OutlineThickness: p.Text.OutlineThickness,
		}
	}
	if p.Behavior != nil {
		kind, err := component.ParseBehaviorKind(p.Behavior.Kind)
		if err != nil {
			return nil, err
		}
		e.Behavior = &component.Behavior{
			Kind:      kind,
			Extent:    p.Behavior.Extent,
			Amplitude: p.Behavior.Amplitude,
			Frequency: p.Behavior.Frequency,
		}
		if kind == component.BehaviorBounce && e.Behavior.Extent == 0 {
			e.Behavior.Extent = constant.BounceExtent
		}
		if kind == component.BehaviorSineSweepX && e.Behavior.Frequency == 0 {
			e.Behavior.Frequency = 1
		}
	}
	if p.AABB != nil {
		box := *p.AABB
		e.AABB = &box
	}
	if p.Health != nil {
		e.Health = &component.Health{Value: *p.Health}
	}
	if p.OffScreenDestroy {
		e.OffScreenDestroy = &component.OffScreenDestroy{}
	}
	if p.ScreenBound {
		e.ScreenBound = &component.ScreenBound{}
	}
	if p.Sound != nil {
		buf, found := f.assets.Sounds.Load(p.Sound.Name, struct{}{})
		if !found {
			return nil, fmt.Errorf("sound %q: %w", p.Sound.Name, audio.ErrUnknownSound)
		}
		if old, exists := f.sounds[name]; exists {
			old.buf.Release()
		}
		f.sounds[name] = soundDef{buf: buf, gain: p.Sound.Gain}
	}

	ok = true
	return e, nil
}
