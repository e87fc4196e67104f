package component

import "github.com/lixenwraith/skirmish/vmath"

// Motion is linear kinematic state integrated with explicit Euler each tick
type Motion struct {
	Velocity     vmath.Vec2
	Acceleration vmath.Vec2
}

// Integrate advances velocity then position by dt
func (m *Motion) Integrate(position *vmath.Vec2, dt float32) {
	m.Velocity = m.Velocity.Add(m.Acceleration.Mul(dt))
	*position = position.Add(m.Velocity.Mul(dt))
}

// Tag labels an entity for logs and debug output only
type Tag string

// Health counts hits remaining before an entity is destroyed
type Health struct {
	Value int
}

// DelayErase marks an entity for removal on a later tick
type DelayErase struct {
	// WaitSound defers removal while the attached sound is still playing
	WaitSound bool
}

// OffScreenDestroy marks an entity for erasure once its box leaves the screen
type OffScreenDestroy struct{}

// ScreenBound clamps an entity's position into the screen box
type ScreenBound struct{}
