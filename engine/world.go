// Package engine provides the typed entity-component store and the fixed
// timestep infrastructure the game runs on.
//
// Unlike a string-keyed registry, the World holds one named, typed store
// per component. Systems reach components through struct fields, so there
// is no reflection and no dynamic dispatch anywhere on the frame path.
package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/kobra/component"
)

// World owns entity allocation and the per-type component stores
type World struct {
	nextEntity atomic.Uint64

	Positions      *Store[component.Position]
	Velocities     *Store[component.Velocity]
	Bodies         *Store[component.SnakeBody]
	Interpolations *Store[component.Interpolation]
	Edibles        *Store[component.Edible]
	Obstacles      *Store[component.Obstacle]
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		Positions:      NewStore[component.Position](),
		Velocities:     NewStore[component.Velocity](),
		Bodies:         NewStore[component.SnakeBody](),
		Interpolations: NewStore[component.Interpolation](),
		Edibles:        NewStore[component.Edible](),
		Obstacles:      NewStore[component.Obstacle](),
	}
}

// CreateEntity allocates a fresh entity id, never zero
func (w *World) CreateEntity() Entity {
	return Entity(w.nextEntity.Add(1))
}

// DestroyEntity removes the entity from every store
func (w *World) DestroyEntity(e Entity) {
	w.Positions.Remove(e)
	w.Velocities.Remove(e)
	w.Bodies.Remove(e)
	w.Interpolations.Remove(e)
	w.Edibles.Remove(e)
	w.Obstacles.Remove(e)
}

// ClearEdibles destroys every edible entity
func (w *World) ClearEdibles() {
	for _, e := range w.Edibles.Entities() {
		w.DestroyEntity(e)
	}
}

// ClearObstacles destroys every obstacle entity
func (w *World) ClearObstacles() {
	for _, e := range w.Obstacles.Entities() {
		w.DestroyEntity(e)
	}
}
