package system

import (
	"github.com/lixenwraith/kobra/board"
	"github.com/lixenwraith/kobra/component"
	"github.com/lixenwraith/kobra/engine"
)

// DeathReason identifies what killed the snake.
type DeathReason uint8

const (
	ReasonNone DeathReason = iota
	ReasonWall
	ReasonSelf
	ReasonObstacle
)

func (r DeathReason) String() string {
	switch r {
	case ReasonWall:
		return "wall"
	case ReasonSelf:
		return "self"
	case ReasonObstacle:
		return "obstacle"
	}
	return "none"
}

// OutcomeKind classifies the result of a movement attempt.
type OutcomeKind uint8

const (
	OutcomeIdle OutcomeKind = iota
	OutcomeMoved
	OutcomeDeath
)

// MoveOutcome is the typed result of resolving one movement attempt.
// Exactly one interpretation applies per Kind: a Death outcome carries
// Reason, a Moved outcome carries the destination and, when the
// destination holds an edible, the entity to consume.
type MoveOutcome struct {
	Kind   OutcomeKind
	NextX  int
	NextY  int
	Reason DeathReason

	// Ate is the edible entity at the destination, zero when none.
	Ate  engine.Entity
	Food component.Edible
}

// AttemptMove resolves a single movement attempt for the snake without
// mutating any component. Fatal conditions are checked before consumption:
// wall, then self, then obstacle. A move onto an edible both moves and
// consumes.
func AttemptMove(w *engine.World, snake engine.Entity, b board.Board, lethalWalls bool) MoveOutcome {
	vel, ok := w.Velocities.Get(snake)
	if !ok || vel.IsZero() {
		return MoveOutcome{Kind: OutcomeIdle}
	}
	pos, ok := w.Positions.Get(snake)
	if !ok {
		return MoveOutcome{Kind: OutcomeIdle}
	}

	nextX := pos.X + vel.DX*b.CellSize
	nextY := pos.Y + vel.DY*b.CellSize
	if lethalWalls {
		if !b.Contains(nextX, nextY) {
			return MoveOutcome{Kind: OutcomeDeath, Reason: ReasonWall}
		}
	} else {
		nextX = b.WrapX(nextX)
		nextY = b.WrapY(nextY)
	}

	// Consumption is resolved up front because it decides whether the
	// tail cell is vacated this move: a non-growing snake may re-enter
	// the cell its last segment is about to leave.
	ate, food := edibleAt(w, nextX, nextY)

	body, _ := w.Bodies.Get(snake)
	skipLast := food.Growth <= 0 && len(body.Segments) > 0
	for i, seg := range body.Segments {
		if skipLast && i == len(body.Segments)-1 {
			continue
		}
		if seg.X == nextX && seg.Y == nextY {
			return MoveOutcome{Kind: OutcomeDeath, Reason: ReasonSelf}
		}
	}

	if obstacleAt(w, nextX, nextY) {
		return MoveOutcome{Kind: OutcomeDeath, Reason: ReasonObstacle}
	}

	return MoveOutcome{Kind: OutcomeMoved, NextX: nextX, NextY: nextY, Ate: ate, Food: food}
}

func edibleAt(w *engine.World, x, y int) (engine.Entity, component.Edible) {
	for _, e := range w.Edibles.Entities() {
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		if pos.X == x && pos.Y == y {
			food, _ := w.Edibles.Get(e)
			return e, food
		}
	}
	return 0, component.Edible{}
}

func obstacleAt(w *engine.World, x, y int) bool {
	for _, e := range w.Obstacles.Entities() {
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		if pos.X == x && pos.Y == y {
			return true
		}
	}
	return false
}
