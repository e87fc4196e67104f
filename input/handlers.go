package input

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/skirmish/constant"
	"github.com/lixenwraith/skirmish/engine"
	"github.com/lixenwraith/skirmish/vmath"
)

// axisBinding drives one motion axis from a pair of opposing keys
type axisBinding struct {
	axis     int
	negative Key
	positive Key
	speed    float32
	accel    float32
}

var (
	horizontal = axisBinding{axis: 0, negative: KeyLeft, positive: KeyRight,
		speed: constant.PlayerHorizontalSpeed, accel: constant.PlayerHorizontalAccel}
	vertical = axisBinding{axis: 1, negative: KeyDown, positive: KeyUp,
		speed: constant.PlayerVerticalSpeed, accel: constant.PlayerVerticalAccel}
)

// handler returns the movement handler; on release the opposite key takes over if still held
func (b axisBinding) handler(d *Dispatcher) Handler {
	var h Handler
	h = func(g *engine.Game, key Key, action Action, mods ModMask) {
		player := g.Scene.Player()
		if player == nil {
			return
		}
		direction := float32(1)
		other := b.negative
		if key == b.negative {
			direction = -1
			other = b.positive
		}

		switch action {
		case Press, Repeat:
			player.Motion.Velocity[b.axis] = b.speed * direction
			player.Motion.Acceleration[b.axis] = b.accel * direction
		case Release:
			if d.Held(other) {
				h(g, other, Repeat, mods)
				return
			}
			player.Motion.Velocity[b.axis] = 0
			player.Motion.Acceleration[b.axis] = 0
		}
	}
	return h
}

// fireHandler shoots on press, keeps shooting on a timer while held, stops on release
func fireHandler(g *engine.Game, _ Key, action Action, _ ModMask) {
	switch action {
	case Press:
		firePlayerProjectiles(g, 0, 0)
		g.SetTimedAction(constant.FireSlot, constant.FireInterval, firePlayerProjectiles)
	case Release:
		g.CancelTimedAction(constant.FireSlot)
	}
}

// firePlayerProjectiles spawns a projectile at each cannon, the pair share one sound source
func firePlayerProjectiles(g *engine.Game, _, _ float32) {
	player := g.Scene.Player()
	if player == nil {
		return
	}
	origin := player.Transform.Position

	left, err := g.Factory.NewProjectile(vmath.Vec2{
		origin.X() - constant.ProjectileOffsetX + constant.ProjectileSpriteCorrection,
		origin.Y() + constant.ProjectileOffsetY,
	})
	if err != nil {
		g.Log.Error("projectile spawn failed", zap.Error(err))
		return
	}
	right := left.Clone()
	right.Place(vmath.Vec2{origin.X() + constant.ProjectileOffsetX, origin.Y() + constant.ProjectileOffsetY})

	g.Scene.Add(engine.LayerProjectile, left)
	g.Scene.Add(engine.LayerProjectile, right)
	if right.Sound != nil {
		right.Sound.Get().Play()
	}
}

// toggleHandler flips a setting on press only
func toggleHandler(toggle func(g *engine.Game)) Handler {
	return func(g *engine.Game, _ Key, action Action, _ ModMask) {
		if action == Press {
			toggle(g)
		}
	}
}

func quitHandler(g *engine.Game, _ Key, action Action, _ ModMask) {
	if action == Press {
		g.RequestQuit()
	}
}
