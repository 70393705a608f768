package parameter

// Difficulty selects the fraction of the board filled with obstacles
type Difficulty uint8

const (
	DifficultyNone Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
	DifficultyImpossible
)

// ObstacleFraction is the share of total cells occupied per difficulty
var obstacleFraction = map[Difficulty]float64{
	DifficultyNone:       0.0,
	DifficultyEasy:       0.04,
	DifficultyMedium:     0.06,
	DifficultyHard:       0.10,
	DifficultyImpossible: 0.15,
}

// ObstacleFraction returns the obstacle share for d, 0 for unknown values
func (d Difficulty) ObstacleFraction() float64 {
	return obstacleFraction[d]
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyNone:
		return "None"
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyImpossible:
		return "Impossible"
	}
	return "None"
}

// ParseDifficulty maps a settings label back to a Difficulty.
// Unknown labels fall back to DifficultyNone.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "Easy":
		return DifficultyEasy
	case "Medium":
		return DifficultyMedium
	case "Hard":
		return DifficultyHard
	case "Impossible":
		return DifficultyImpossible
	}
	return DifficultyNone
}

// Difficulties lists all levels in menu order
func Difficulties() []Difficulty {
	return []Difficulty{
		DifficultyNone,
		DifficultyEasy,
		DifficultyMedium,
		DifficultyHard,
		DifficultyImpossible,
	}
}
