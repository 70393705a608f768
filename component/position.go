package component

// Position is a grid-aligned pixel position plus the cell occupied before
// the last committed move. PrevX/PrevY exist only for interpolation; game
// rules read X/Y exclusively.
type Position struct {
	X, Y         int
	PrevX, PrevY int
}

// At builds a resting position, previous cell equal to current
func At(x, y int) Position {
	return Position{X: x, Y: y, PrevX: x, PrevY: y}
}
