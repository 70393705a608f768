package component

// Cell is one grid-aligned pixel coordinate pair
type Cell struct {
	X, Y int
}

// SnakeBody is the tail of a snake: the cells behind the head, index 0
// nearest the head. The head cell itself lives in Position. Length changes
// only at move commit: push the vacated head cell, pop the tail unless an
// edible was consumed on the same commit.
type SnakeBody struct {
	Segments []Cell
	Alive    bool
}

// Occupies reports whether any tail segment sits on the given cell
func (b SnakeBody) Occupies(x, y int) bool {
	for _, s := range b.Segments {
		if s.X == x && s.Y == y {
			return true
		}
	}
	return false
}

// Length is the full snake length including the head
func (b SnakeBody) Length() int {
	return len(b.Segments) + 1
}
