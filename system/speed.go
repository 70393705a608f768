package system

import "github.com/lixenwraith/kobra/parameter"

// Speed tracks the snake's pace in cells per second. Current drifts with
// consumed edibles; Initial is restored by Reset after a death.
type Speed struct {
	Current float64
	Initial float64
	Max     float64
}

func NewSpeed(initial, max float64) Speed {
	return Speed{Current: initial, Initial: initial, Max: max}
}

// ApplyFactor scales the current speed and clamps it into the playable
// range. Accelerating edibles saturate at Max rather than growing
// unboundedly; decelerating ones bottom out above zero so the move
// interval stays finite.
func (s *Speed) ApplyFactor(factor float64) {
	s.Current *= factor
	if s.Current > s.Max {
		s.Current = s.Max
	}
	if s.Current < parameter.MinInitialSpeed {
		s.Current = parameter.MinInitialSpeed
	}
}

func (s *Speed) Reset() {
	s.Current = s.Initial
}
