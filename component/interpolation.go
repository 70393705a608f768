package component

// WrapAxis flags which axes of an in-flight transition cross the board
// boundary and need velocity-relative rendering instead of a naive lerp
type WrapAxis uint8

const (
	WrapNone WrapAxis = iota
	WrapX
	WrapY
	WrapBoth
)

// X reports whether the horizontal axis wraps
func (w WrapAxis) X() bool {
	return w == WrapX || w == WrapBoth
}

// Y reports whether the vertical axis wraps
func (w WrapAxis) Y() bool {
	return w == WrapY || w == WrapBoth
}

// Interpolation tracks sub-frame progress of a single cell-to-cell
// transition. Alpha is the fraction of the way from the previous cell to
// the current one; at 1.0 the move commits and alpha snaps back to 0.
// TargetX/TargetY hold the pending destination while a move is in flight.
type Interpolation struct {
	Alpha            float64
	Wrapped          WrapAxis
	TargetX, TargetY int
}

// InFlight reports whether a transition toward a different cell is pending
func (i Interpolation) InFlight(pos Position) bool {
	return i.TargetX != pos.X || i.TargetY != pos.Y
}
