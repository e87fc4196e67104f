package engine

import (
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/vmath"
)

// Update advances the simulation by one fixed tick
// Phase order is fixed: timers, erasure, cursor hit-test, per-entity update,
// projectile hits, player collision
// The erase sweep runs before the entity update so entities retired last tick never collide again
func (g *Game) Update(dt, time float32) {
	g.runTimedActions(dt, time)
	g.sweepErased()
	g.hitTestCursor()
	g.updateEntities(dt, time)
	g.collideProjectiles()
	if !g.Paused {
		g.collidePlayer()
	}
}

func (g *Game) runTimedActions(dt, time float32) {
	for _, slot := range slices.Sorted(maps.Keys(g.TimedActions)) {
		// an earlier action may have cancelled this slot
		if action, ok := g.TimedActions[slot]; ok {
			action.Update(g, dt, time)
		}
	}
}

func (g *Game) sweepErased() {
	n := g.Scene.Sweep(func(e *Entity) bool {
		if e.DelayErase == nil {
			return false
		}
		return !(e.DelayErase.WaitSound && e.soundPlaying())
	})
	if n > 0 {
		g.Log.Debug("erased", zap.Int("count", n))
	}
}

// hitTestCursor sets Hover when the cursor touches any spaceship, without recording which
func (g *Game) hitTestCursor() {
	g.Hover = false
	if g.Pointer == nil {
		return
	}
	pos := g.Pointer.Normalized()
	cursor := vmath.AABB{Min: pos, Max: pos.Add(g.Pointer.PixelSize())}

	for i := range g.Scene.Layers[LayerSpaceship] {
		ship := &g.Scene.Layers[LayerSpaceship][i]
		box, ok := ship.WorldAABB()
		if ok && vmath.Overlap(cursor, box) {
			g.Hover = true
		}
	}
}

func (g *Game) updateEntities(dt, time float32) {
	g.Scene.Each(func(_ Layer, e *Entity) {
		e.PrevTransform = e.Transform
		e.Motion.Integrate(&e.Transform.Position, dt)

		if e.Sprite != nil {
			e.Sprite.Advance(dt)
			if e.Sprite.Expired() {
				e.Retire(true)
			}
		}

		if e.Behavior != nil {
			e.Behavior.Apply(&e.Transform.Position, &e.Motion, time)
		}

		if e.OffScreenDestroy != nil && e.DelayErase == nil {
			if box, ok := e.WorldAABB(); ok && !vmath.Overlap(box, g.ScreenAABB) {
				e.DelayErase = &component.DelayErase{}
			}
		}

		if e.ScreenBound != nil {
			e.Transform.Position = g.ScreenAABB.ClampPoint(e.Transform.Position)
		}
	})
}

// collideProjectiles tests every live projectile against every live non-player spaceship
func (g *Game) collideProjectiles() {
	ships := g.Scene.Layers[LayerSpaceship]
	for si := 1; si < len(ships); si++ {
		ship := &ships[si]
		if !ship.Live() {
			continue
		}

		projectiles := g.Scene.Layers[LayerProjectile]
		for pi := range projectiles {
			p := &projectiles[pi]
			if !p.Live() {
				continue
			}
			shipBox, ok := ship.WorldAABB()
			if !ok {
				break
			}
			projBox, ok := p.WorldAABB()
			if !ok || !vmath.Overlap(projBox, shipBox) {
				continue
			}

			g.explode(p.Transform.Position)
			p.Retire(true)

			if ship.Health == nil {
				continue
			}
			ship.Health.Value--
			g.Log.Debug("hit",
				zap.String("target", string(ship.Tag)),
				zap.Int("health", ship.Health.Value))
			if ship.Health.Value <= 0 {
				g.Log.Info("destroyed", zap.String("target", string(ship.Tag)))
				ship.Retire(false)
				g.Pause()
				break
			}
		}
	}
}

// collidePlayer ends the run when the player touches an enemy
func (g *Game) collidePlayer() {
	player := g.Scene.Player()
	if player == nil {
		return
	}
	playerBox, ok := player.WorldAABB()
	if !ok {
		return
	}

	ships := g.Scene.Layers[LayerSpaceship]
	for si := 1; si < len(ships); si++ {
		enemy := &ships[si]
		if !enemy.Live() {
			continue
		}
		box, ok := enemy.WorldAABB()
		if !ok || !vmath.Overlap(playerBox, box) {
			continue
		}

		g.explode(player.Transform.Position)
		player.Mesh.Release()
		player.Mesh = nil
		g.Log.Info("player collided", zap.String("enemy", string(enemy.Tag)))
		g.Pause()
		return
	}
}

// explode spawns an explosion at position and plays its sound
func (g *Game) explode(position vmath.Vec2) {
	e, err := g.Factory.NewExplosion(position)
	if err != nil {
		g.Log.Error("explosion spawn failed", zap.Error(err))
		return
	}
	if e.Sound != nil {
		e.Sound.Get().Play()
	}
	g.Scene.Add(LayerExplosion, e)
}
