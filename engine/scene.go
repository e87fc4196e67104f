package engine

// Layer is one of the fixed entity groups, declared back to front
type Layer uint8

const (
	LayerBackground Layer = iota
	LayerSpaceship        // index 0 is always the player
	LayerProjectile
	LayerExplosion
	LayerGUI
	LayerText
	LayerCount
)

var layerNames = [LayerCount]string{"background", "spaceship", "projectile", "explosion", "gui", "text"}

func (l Layer) String() string {
	if l >= LayerCount {
		return "unknown"
	}
	return layerNames[l]
}

// Scene owns every entity, partitioned into ordered layers
type Scene struct {
	Layers [LayerCount][]Entity
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// Add appends e to layer l and returns its slot
func (s *Scene) Add(l Layer, e Entity) int {
	s.Layers[l] = append(s.Layers[l], e)
	return len(s.Layers[l]) - 1
}

// At returns the entity in slot i of layer l, nil when out of range
// The pointer is invalidated by any later Add or Sweep on that layer
func (s *Scene) At(l Layer, i int) *Entity {
	if i < 0 || i >= len(s.Layers[l]) {
		return nil
	}
	return &s.Layers[l][i]
}

// Player returns the first spaceship, nil before the scene is populated
func (s *Scene) Player() *Entity {
	return s.At(LayerSpaceship, 0)
}

// Count returns the number of entities across all layers
func (s *Scene) Count() int {
	n := 0
	for _, layer := range s.Layers {
		n += len(layer)
	}
	return n
}

// Each visits every entity in layer declaration order
func (s *Scene) Each(fn func(l Layer, e *Entity)) {
	for l := range s.Layers {
		layer := s.Layers[l]
		for i := range layer {
			fn(Layer(l), &layer[i])
		}
	}
}

// Sweep removes every entity erase reports true for, releasing its handles
// Relative order of the survivors is preserved
// Returns the number of entities removed
func (s *Scene) Sweep(erase func(e *Entity) bool) int {
	removed := 0
	for l := range s.Layers {
		layer := s.Layers[l]
		kept := layer[:0]
		for i := range layer {
			if erase(&layer[i]) {
				layer[i].Release()
				removed++
				continue
			}
			kept = append(kept, layer[i])
		}
		clear(layer[len(kept):])
		s.Layers[l] = kept
	}
	return removed
}

// Clear releases and removes every entity
func (s *Scene) Clear() {
	s.Sweep(func(*Entity) bool { return true })
}
