package engine

import (
	"fmt"

	"github.com/lixenwraith/skirmish/asset"
	"github.com/lixenwraith/skirmish/audio"
	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/constant"
	"github.com/lixenwraith/skirmish/vmath"
)

// Entity is a bag of optional components, identified only by its slot in a layer
// Nil pointer fields are absent components
type Entity struct {
	Tag           component.Tag
	Transform     vmath.Transform
	PrevTransform vmath.Transform
	Motion        component.Motion

	// Render handle, an entity without one is not drawn
	Mesh    *asset.Ref[*asset.Mesh]
	Texture *asset.Ref[*asset.Texture]
	Sprite  *component.SpriteAnimation
	Text    *component.TextFormat
	// Color fills an untextured quad
	Color string

	Behavior         *component.Behavior
	AABB             *vmath.AABB
	OffScreenDestroy *component.OffScreenDestroy
	ScreenBound      *component.ScreenBound
	Sound            *asset.Ref[audio.Player]
	DelayErase       *component.DelayErase
	Health           *component.Health
}

// Clone deep-copies component state and retains every shared handle
func (e *Entity) Clone() Entity {
	c := *e
	c.Mesh = e.Mesh.Retain()
	c.Texture = e.Texture.Retain()
	c.Sound = e.Sound.Retain()
	c.Sprite = e.Sprite.Clone()
	c.Text = e.Text.Clone()
	c.Behavior = clonePtr(e.Behavior)
	c.AABB = clonePtr(e.AABB)
	c.OffScreenDestroy = clonePtr(e.OffScreenDestroy)
	c.ScreenBound = clonePtr(e.ScreenBound)
	c.DelayErase = clonePtr(e.DelayErase)
	c.Health = clonePtr(e.Health)
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Release drops the entity's shared handles, called when it leaves its layer
func (e *Entity) Release() {
	e.Mesh.Release()
	e.Texture.Release()
	e.Sound.Release()
	e.Text.Release()
	e.Mesh, e.Texture, e.Sound = nil, nil, nil
}

// Validate checks component dependencies
func (e *Entity) Validate() error {
	if e.OffScreenDestroy != nil && e.AABB == nil {
		return fmt.Errorf("entity %q: off-screen destroy requires an aabb", e.Tag)
	}
	if e.Sprite != nil {
		if e.Mesh == nil {
			return fmt.Errorf("entity %q: sprite animation requires a mesh", e.Tag)
		}
		mesh := e.Mesh.Get()
		for i, f := range e.Sprite.Frames {
			if !mesh.Covers(f.Offset, f.Count) {
				return fmt.Errorf("entity %q: frame %d draws outside the mesh", e.Tag, i)
			}
		}
	}
	return nil
}

// Place moves the entity without interpolating from its old position
func (e *Entity) Place(position vmath.Vec2) {
	e.Transform.Position = position
	e.PrevTransform = e.Transform
}

// WorldAABB returns the bounding box in camera space
func (e *Entity) WorldAABB() (vmath.AABB, bool) {
	if e.AABB == nil {
		return vmath.AABB{}, false
	}
	return e.AABB.Transform(e.Transform.Matrix()), true
}

// Live reports whether the entity still takes part in collisions
func (e *Entity) Live() bool {
	return e.DelayErase == nil
}

// Retire marks the entity for delayed erasure and parks it at the sentinel position
// An entity already marked keeps its original erase condition
func (e *Entity) Retire(waitSound bool) {
	if e.DelayErase != nil {
		return
	}
	e.DelayErase = &component.DelayErase{WaitSound: waitSound}
	e.park()
}

func (e *Entity) park() {
	e.Transform = vmath.At(vmath.Vec2{constant.SentinelPosition, constant.SentinelPosition})
	e.PrevTransform = e.Transform
}

// soundPlaying reports whether the attached source is still audible
func (e *Entity) soundPlaying() bool {
	return e.Sound != nil && e.Sound.Alive() && e.Sound.Get().IsPlaying()
}
