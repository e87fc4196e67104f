package component

import (
	"fmt"

	"github.com/lixenwraith/skirmish/vmath"
)

// BehaviorKind selects a per-tick scripted movement
type BehaviorKind uint8

const (
	BehaviorNone       BehaviorKind = iota
	BehaviorBounce                  // Reverse velocity when leaving a box around the origin
	BehaviorSineSweepX              // x = sin(time*Frequency)*Amplitude
)

var behaviorNames = map[string]BehaviorKind{
	"bounce":       BehaviorBounce,
	"sine_sweep_x": BehaviorSineSweepX,
}

// ParseBehaviorKind maps a data name to its kind
func ParseBehaviorKind(name string) (BehaviorKind, error) {
	k, ok := behaviorNames[name]
	if !ok {
		return BehaviorNone, fmt.Errorf("unknown behavior %q", name)
	}
	return k, nil
}

func (k BehaviorKind) String() string {
	for name, kind := range behaviorNames {
		if kind == k {
			return name
		}
	}
	return "none"
}

// Behavior is a closed variant of per-tick movement scripts
type Behavior struct {
	Kind BehaviorKind

	// Bounce
	Extent float32

	// Sine sweep
	Amplitude float32
	Frequency float32
}

// Apply runs the behavior against an entity's position and motion
func (b Behavior) Apply(position *vmath.Vec2, motion *Motion, time float32) {
	switch b.Kind {
	case BehaviorBounce:
		for axis := 0; axis < 2; axis++ {
			if position[axis] < -b.Extent || position[axis] >= b.Extent {
				motion.Velocity[axis] = -motion.Velocity[axis]
			}
		}
	case BehaviorSineSweepX:
		position[0] = vmath.Sin(time*b.Frequency) * b.Amplitude
	}
}
