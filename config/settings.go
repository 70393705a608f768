// Package config defines the player-tunable settings, their validation
// rules, and a flat TOML file format to persist them across runs.
package config

import (
	"fmt"

	"github.com/lixenwraith/kobra/parameter"
)

// Settings is every player-tunable knob. Geometry fields take effect on
// the next arena reset; the rest apply live.
type Settings struct {
	// CellsPerSide is the arena side length in cells; the arena is square
	CellsPerSide int

	// InitialSpeed and MaxSpeed bound the speed model, in cells per second
	InitialSpeed float64
	MaxSpeed     float64

	// Apples is the number of edibles kept on the board
	Apples int

	Difficulty parameter.Difficulty

	// LethalWalls toggles between electric borders and wraparound
	LethalWalls bool

	EatSound   bool
	DeathSound bool
	Music      bool
}

// Default returns the out-of-the-box settings
func Default() Settings {
	return Settings{
		CellsPerSide: 30,
		InitialSpeed: parameter.DefaultInitialSpeed,
		MaxSpeed:     parameter.DefaultMaxSpeed,
		Apples:       3,
		Difficulty:   parameter.DifficultyNone,
		LethalWalls:  true,
		EatSound:     true,
		DeathSound:   true,
		Music:        false,
	}
}

// Validate rejects settings outside the supported ranges
func (s Settings) Validate() error {
	if s.CellsPerSide < parameter.MinCellsPerSide || s.CellsPerSide > parameter.MaxCellsPerSide {
		return fmt.Errorf("cells_per_side %d outside [%d, %d]",
			s.CellsPerSide, parameter.MinCellsPerSide, parameter.MaxCellsPerSide)
	}
	if s.InitialSpeed < parameter.MinInitialSpeed || s.InitialSpeed > parameter.MaxInitialSpeed {
		return fmt.Errorf("initial_speed %g outside [%g, %g]",
			s.InitialSpeed, parameter.MinInitialSpeed, parameter.MaxInitialSpeed)
	}
	if s.MaxSpeed < parameter.MinMaxSpeed || s.MaxSpeed > parameter.MaxMaxSpeed {
		return fmt.Errorf("max_speed %g outside [%g, %g]",
			s.MaxSpeed, parameter.MinMaxSpeed, parameter.MaxMaxSpeed)
	}
	if s.MaxSpeed < s.InitialSpeed {
		return fmt.Errorf("max_speed %g below initial_speed %g", s.MaxSpeed, s.InitialSpeed)
	}
	if s.Apples < parameter.MinApples || s.Apples > parameter.MaxApples {
		return fmt.Errorf("apples %d outside [%d, %d]",
			s.Apples, parameter.MinApples, parameter.MaxApples)
	}
	return nil
}

// BoardDimension is the arena side length in board pixels
func (s Settings) BoardDimension() int {
	return s.CellsPerSide * parameter.DefaultCellSize
}

// NeedsReset reports whether switching from old to s changes the arena
// layout and therefore requires a fresh round.
func (s Settings) NeedsReset(old Settings) bool {
	return s.CellsPerSide != old.CellsPerSide ||
		s.Apples != old.Apples ||
		s.Difficulty != old.Difficulty ||
		s.InitialSpeed != old.InitialSpeed
}
