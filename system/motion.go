package system

import (
	"github.com/lixenwraith/kobra/board"
	"github.com/lixenwraith/kobra/component"
	"github.com/lixenwraith/kobra/engine"
)

// CommitResult reports what one motion update did, so the caller can apply
// scoring, speed scaling and event emission without the motion system
// reaching into those concerns.
type CommitResult struct {
	// Committed is true when an in-flight transition completed this frame.
	Committed bool

	// Ate is the edible consumed by the committed move, zero when none.
	Ate  engine.Entity
	Food component.Edible

	// Died is true when a movement attempt hit a fatal cell this frame.
	Died   bool
	Reason DeathReason
}

// Motion owns the snake's movement lifecycle: initiating transitions,
// advancing interpolation, and committing completed moves into the body
// chain. Consumption detected at initiation is held until the commit, so
// the visible snake never grows mid-transition.
type Motion struct {
	pendingAte  engine.Entity
	pendingFood component.Edible
}

// Update advances the snake by one frame of dtMs milliseconds at the given
// speed. Resting snakes attempt a new move; in-flight snakes accumulate
// alpha and commit when it reaches 1.0.
func (m *Motion) Update(w *engine.World, snake engine.Entity, b board.Board, dtMs, speed float64, lethalWalls bool) CommitResult {
	body, ok := w.Bodies.Get(snake)
	if !ok || !body.Alive {
		return CommitResult{}
	}
	pos, _ := w.Positions.Get(snake)
	itp, _ := w.Interpolations.Get(snake)

	if !itp.InFlight(pos) {
		out := AttemptMove(w, snake, b, lethalWalls)
		switch out.Kind {
		case OutcomeIdle:
			itp.Alpha = 0
			w.Interpolations.Set(snake, itp)
			return CommitResult{}
		case OutcomeDeath:
			body.Alive = false
			w.Bodies.Set(snake, body)
			return CommitResult{Died: true, Reason: out.Reason}
		}
		itp.Alpha = 0
		itp.TargetX = out.NextX
		itp.TargetY = out.NextY
		itp.Wrapped = DetectWrap(pos.X, pos.Y, out.NextX, out.NextY, b, lethalWalls)
		w.Interpolations.Set(snake, itp)
		m.pendingAte = out.Ate
		m.pendingFood = out.Food
	}

	alpha, completed := AdvanceAlpha(dtMs, speed, itp.Alpha)
	itp.Alpha = alpha
	w.Interpolations.Set(snake, itp)
	if !completed {
		return CommitResult{}
	}
	return m.commit(w, snake, pos, itp, body)
}

// commit finalizes a completed transition: the head advances to the
// target, the vacated head cell becomes the first tail segment, and the
// last segment pops unless the consumed edible grants growth.
func (m *Motion) commit(w *engine.World, snake engine.Entity, pos component.Position, itp component.Interpolation, body component.SnakeBody) CommitResult {
	res := CommitResult{Committed: true, Ate: m.pendingAte, Food: m.pendingFood}
	m.pendingAte = 0
	m.pendingFood = component.Edible{}

	body.Segments = append([]component.Cell{{X: pos.X, Y: pos.Y}}, body.Segments...)
	if res.Food.Growth <= 0 && len(body.Segments) > 0 {
		body.Segments = body.Segments[:len(body.Segments)-1]
	}
	w.Bodies.Set(snake, body)

	pos.PrevX, pos.PrevY = pos.X, pos.Y
	pos.X, pos.Y = itp.TargetX, itp.TargetY
	w.Positions.Set(snake, pos)

	itp.Alpha = 0
	itp.Wrapped = component.WrapNone
	w.Interpolations.Set(snake, itp)
	return res
}

// Halt discards any in-flight transition, parking the snake on its current
// cell. Used when a round resets between frames.
func (m *Motion) Halt(w *engine.World, snake engine.Entity) {
	m.pendingAte = 0
	m.pendingFood = component.Edible{}
	pos, ok := w.Positions.Get(snake)
	if !ok {
		return
	}
	w.Interpolations.Set(snake, component.Interpolation{TargetX: pos.X, TargetY: pos.Y})
}
