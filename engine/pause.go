package engine

// Pause releases every held key through the input handlers, then stops player collisions
// No-op when already paused
func (g *Game) Pause() {
	if g.Paused {
		return
	}
	g.Log.Info("pausing game")
	if g.Keys != nil {
		g.Keys.ReleaseAll(g)
	}
	g.Paused = true
}

// Resume is a no-op unless paused
func (g *Game) Resume() {
	if !g.Paused {
		return
	}
	g.Log.Info("resuming game")
	g.Paused = false
}
