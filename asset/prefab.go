package asset

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/skirmish/vmath"
)

// Manifest is the decoded prefab document: entity templates plus the initial scene
type Manifest struct {
	Scene   SceneDef          `yaml:"scene"`
	Prefabs map[string]Prefab `yaml:"prefabs"`
}

// SceneDef lists prefab names spawned into each layer at startup
type SceneDef struct {
	Background []string `yaml:"background"`
	Spaceship  []string `yaml:"spaceship"`
	Projectile []string `yaml:"projectile"`
	Explosion  []string `yaml:"explosion"`
	GUI        []string `yaml:"gui"`
	Text       []string `yaml:"text"`
}

// Layers returns the per-layer prefab lists in draw order
func (s SceneDef) Layers() [][]string {
	return [][]string{s.Background, s.Spaceship, s.Projectile, s.Explosion, s.GUI, s.Text}
}

// Prefab is an entity template, absent sections leave the component unset
type Prefab struct {
	Tag              string          `yaml:"tag"`
	Transform        vmath.Transform `yaml:"transform"`
	Velocity         vmath.Vec2      `yaml:"velocity"`
	Acceleration     vmath.Vec2      `yaml:"acceleration"`
	Color            string          `yaml:"color"`
	Mesh             *MeshDef        `yaml:"mesh"`
	Texture          *TextureRef     `yaml:"texture"`
	Sprite           *SpriteDef      `yaml:"sprite"`
	Text             *TextDef        `yaml:"text"`
	Behavior         *BehaviorDef    `yaml:"behavior"`
	AABB             *vmath.AABB     `yaml:"aabb"`
	Sound            *SoundDef       `yaml:"sound"`
	Health           *int            `yaml:"health"`
	OffScreenDestroy bool            `yaml:"off_screen_destroy"`
	ScreenBound      bool            `yaml:"screen_bound"`
}

// UnmarshalYAML decodes a prefab on top of the default transform
func (p *Prefab) UnmarshalYAML(node *yaml.Node) error {
	type plain Prefab
	raw := plain{Transform: vmath.NewTransform()}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*p = Prefab(raw)
	return nil
}

// MeshDef sizes the generated sprite mesh
type MeshDef struct {
	Quads int `yaml:"quads"`
}

// TextureRef names a texture and how it is sampled
type TextureRef struct {
	Path   string `yaml:"path"`
	Filter Filter `yaml:"filter"`
}

// SpriteDef is an animation over mesh frames, max_cycles 0 loops forever
type SpriteDef struct {
	MaxCycles int        `yaml:"max_cycles"`
	Frames    []FrameDef `yaml:"frames"`
}

// FrameDef is one animation frame, an index range of the mesh shown for duration seconds
type FrameDef struct {
	Duration float32 `yaml:"duration"`
	Offset   int     `yaml:"offset"`
	Count    int     `yaml:"count"`
}

// TextDef is a text label
type TextDef struct {
	Content          string  `yaml:"content"`
	Font             string  `yaml:"font"`
	Color            string  `yaml:"color"`
	OutlineColor     string  `yaml:"outline_color"`
	OutlineThickness float32 `yaml:"outline_thickness"`
}

// BehaviorDef selects a scripted movement, zero parameters take the kind's defaults
type BehaviorDef struct {
	Kind      string  `yaml:"kind"`
	Extent    float32 `yaml:"extent"`
	Amplitude float32 `yaml:"amplitude"`
	Frequency float32 `yaml:"frequency"`
}

// SoundDef names the synthesized sound an entity plays
type SoundDef struct {
	Name string  `yaml:"name"`
	Gain float32 `yaml:"gain"`
}

// UnmarshalYAML accepts an explicit offset and count, or quad as shorthand for a whole quad
func (f *FrameDef) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Duration float32 `yaml:"duration"`
		Offset   int     `yaml:"offset"`
		Count    int     `yaml:"count"`
		Quad     *int    `yaml:"quad"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*f = FrameDef{Duration: raw.Duration, Offset: raw.Offset, Count: raw.Count}
	if raw.Quad == nil {
		return nil
	}
	if raw.Offset != 0 || raw.Count != 0 {
		return fmt.Errorf("line %d: frame sets quad together with offset or count", node.Line)
	}
	f.Offset, f.Count = FrameRange(*raw.Quad)
	return nil
}

// UnmarshalYAML accepts "nearest" or "linear"
func (f *Filter) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	switch name {
	case "", "nearest":
		*f = FilterNearest
	case "linear":
		*f = FilterLinear
	default:
		return fmt.Errorf("line %d: unknown filter %q", node.Line, name)
	}
	return nil
}

// ParseManifest decodes and validates a prefab document
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode prefabs: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks prefab invariants and scene references
func (m *Manifest) Validate() error {
	for name, p := range m.Prefabs {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("prefab %q: %w", name, err)
		}
	}
	for _, layer := range m.Scene.Layers() {
		for _, name := range layer {
			if _, ok := m.Prefabs[name]; !ok {
				return fmt.Errorf("scene references prefab %q: %w", name, ErrNotFound)
			}
		}
	}
	return nil
}

// Validate checks the component dependencies of a single template
func (p Prefab) Validate() error {
	if p.OffScreenDestroy && p.AABB == nil {
		return fmt.Errorf("off_screen_destroy requires aabb")
	}
	if p.Sprite == nil {
		return nil
	}
	if p.Mesh == nil {
		return fmt.Errorf("sprite requires mesh")
	}
	if len(p.Sprite.Frames) == 0 {
		return fmt.Errorf("sprite has no frames")
	}
	mesh := GenSpriteQuads(p.Mesh.Quads)
	for i, f := range p.Sprite.Frames {
		if !mesh.Covers(f.Offset, f.Count) {
			return fmt.Errorf("sprite frame %d range [%d,+%d) outside mesh of %d indices", i, f.Offset, f.Count, mesh.Indices)
		}
	}
	return nil
}

// Prefab looks up a template by name
func (m *Manifest) Prefab(name string) (Prefab, bool) {
	p, ok := m.Prefabs[name]
	return p, ok
}
