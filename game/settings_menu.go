package game

import (
	"fmt"

	"github.com/lixenwraith/kobra/config"
	"github.com/lixenwraith/kobra/parameter"
)

// settingsField is one adjustable row of the settings menu. Left/right
// intents call adjust with -1/+1; the row renders via format.
type settingsField struct {
	label  string
	format func(s *config.Settings) string
	adjust func(s *config.Settings, dir int)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func settingsFields() []settingsField {
	return []settingsField{
		{
			label:  "Grid size",
			format: func(s *config.Settings) string { return fmt.Sprintf("%d cells", s.CellsPerSide) },
			adjust: func(s *config.Settings, dir int) {
				s.CellsPerSide = clampInt(s.CellsPerSide+dir*2, parameter.MinCellsPerSide, parameter.MaxCellsPerSide)
			},
		},
		{
			label:  "Initial speed",
			format: func(s *config.Settings) string { return fmt.Sprintf("%.1f cells/s", s.InitialSpeed) },
			adjust: func(s *config.Settings, dir int) {
				s.InitialSpeed = clampFloat(s.InitialSpeed+float64(dir), parameter.MinInitialSpeed, parameter.MaxInitialSpeed)
				if s.MaxSpeed < s.InitialSpeed {
					s.MaxSpeed = s.InitialSpeed
				}
			},
		},
		{
			label:  "Max speed",
			format: func(s *config.Settings) string { return fmt.Sprintf("%.1f cells/s", s.MaxSpeed) },
			adjust: func(s *config.Settings, dir int) {
				s.MaxSpeed = clampFloat(s.MaxSpeed+float64(dir)*2, parameter.MinMaxSpeed, parameter.MaxMaxSpeed)
				if s.MaxSpeed < s.InitialSpeed {
					s.MaxSpeed = s.InitialSpeed
				}
			},
		},
		{
			label:  "Apples",
			format: func(s *config.Settings) string { return fmt.Sprintf("%d", s.Apples) },
			adjust: func(s *config.Settings, dir int) {
				s.Apples = clampInt(s.Apples+dir, parameter.MinApples, parameter.MaxApples)
			},
		},
		{
			label:  "Obstacles",
			format: func(s *config.Settings) string { return s.Difficulty.String() },
			adjust: func(s *config.Settings, dir int) {
				levels := parameter.Difficulties()
				idx := 0
				for i, d := range levels {
					if d == s.Difficulty {
						idx = i
						break
					}
				}
				s.Difficulty = levels[clampInt(idx+dir, 0, len(levels)-1)]
			},
		},
		{
			label:  "Electric walls",
			format: func(s *config.Settings) string { return onOff(s.LethalWalls) },
			adjust: func(s *config.Settings, dir int) { s.LethalWalls = !s.LethalWalls },
		},
		{
			label:  "Eat sound",
			format: func(s *config.Settings) string { return onOff(s.EatSound) },
			adjust: func(s *config.Settings, dir int) { s.EatSound = !s.EatSound },
		},
		{
			label:  "Death sound",
			format: func(s *config.Settings) string { return onOff(s.DeathSound) },
			adjust: func(s *config.Settings, dir int) { s.DeathSound = !s.DeathSound },
		},
		{
			label:  "Music",
			format: func(s *config.Settings) string { return onOff(s.Music) },
			adjust: func(s *config.Settings, dir int) { s.Music = !s.Music },
		},
	}
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// menuLines renders the fields as menu rows for the renderer
func menuLines(fields []settingsField, s *config.Settings) []string {
	lines := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%-15s %s", f.label, f.format(s)))
	}
	lines = append(lines, "Back")
	return lines
}
