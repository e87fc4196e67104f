package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skirmish/vmath"
)

func TestParseBehaviorKind(t *testing.T) {
	k, err := ParseBehaviorKind("bounce")
	require.NoError(t, err)
	assert.Equal(t, BehaviorBounce, k)
	assert.Equal(t, "bounce", k.String())

	k, err = ParseBehaviorKind("sine_sweep_x")
	require.NoError(t, err)
	assert.Equal(t, BehaviorSineSweepX, k)

	_, err = ParseBehaviorKind("orbit")
	assert.Error(t, err)
	assert.Equal(t, "none", BehaviorNone.String())
}

func TestBounceReversesOutsideBox(t *testing.T) {
	b := Behavior{Kind: BehaviorBounce, Extent: 0.03}
	m := Motion{Velocity: vmath.Vec2{0.014, 0.004}}

	pos := vmath.Vec2{0.01, 0.01}
	b.Apply(&pos, &m, 0)
	assert.Equal(t, vmath.Vec2{0.014, 0.004}, m.Velocity)

	pos = vmath.Vec2{0.03, -0.031}
	b.Apply(&pos, &m, 0)
	assert.Equal(t, vmath.Vec2{-0.014, -0.004}, m.Velocity)
}

func TestSineSweepX(t *testing.T) {
	b := Behavior{Kind: BehaviorSineSweepX, Amplitude: 0.4, Frequency: 1}
	var m Motion
	pos := vmath.Vec2{0, 0.5}

	b.Apply(&pos, &m, math.Pi/2)
	assert.InDelta(t, 0.4, pos.X(), 1e-5)
	assert.InDelta(t, 0.5, pos.Y(), 1e-6)
}

func TestMotionIntegrate(t *testing.T) {
	m := Motion{Velocity: vmath.Vec2{1, 0}, Acceleration: vmath.Vec2{0, 2}}
	pos := vmath.Vec2{0, 0}
	m.Integrate(&pos, 0.5)

	assert.InDelta(t, 1.0, m.Velocity.Y(), 1e-6)
	assert.InDelta(t, 0.5, pos.X(), 1e-6)
	assert.InDelta(t, 0.5, pos.Y(), 1e-6)
}
