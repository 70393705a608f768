package component

// Velocity is a grid direction in cells: at most one axis non-zero, each
// component in {-1, 0, 1}. Reversal into the neck is filtered at the input
// layer; movement treats the stored direction as a precondition.
type Velocity struct {
	DX, DY int
}

// IsZero reports an idle direction
func (v Velocity) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}
