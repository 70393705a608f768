// Package board holds the immutable per-frame arena geometry.
//
// All coordinates in the game are board pixels: integers aligned to the
// grid, so a cell at column c occupies pixels [c*CellSize, (c+1)*CellSize).
// The board is fixed for a session; settings changes that alter geometry
// rebuild it wholesale together with every entity on it.
package board

import (
	"fmt"

	"github.com/lixenwraith/kobra/parameter"
)

// Board is the arena geometry in pixels
type Board struct {
	Width    int
	Height   int
	CellSize int
}

// New validates geometry and returns a Board.
// Width and Height must be positive multiples of cellSize; a cell larger
// than the requested dimensions is a configuration error, never a clamp.
func New(width, height, cellSize int) (Board, error) {
	if cellSize < parameter.MinCellSize {
		return Board{}, fmt.Errorf("board: cell size %d below minimum %d", cellSize, parameter.MinCellSize)
	}
	if cellSize > width || cellSize > height {
		return Board{}, fmt.Errorf("board: cell size %d exceeds dimensions %dx%d", cellSize, width, height)
	}
	if width%cellSize != 0 || height%cellSize != 0 {
		return Board{}, fmt.Errorf("board: dimensions %dx%d not aligned to cell size %d", width, height, cellSize)
	}
	return Board{Width: width, Height: height, CellSize: cellSize}, nil
}

// CalculateWindowSize returns the largest dimension that is an exact
// multiple of cellSize and does not exceed maxDimension
func CalculateWindowSize(maxDimension, cellSize int) int {
	if cellSize <= 0 {
		return 0
	}
	return (maxDimension / cellSize) * cellSize
}

// Cols returns the number of cells per row
func (b Board) Cols() int {
	return b.Width / b.CellSize
}

// Rows returns the number of cells per column
func (b Board) Rows() int {
	return b.Height / b.CellSize
}

// TotalCells returns the cell count of the whole arena
func (b Board) TotalCells() int {
	return b.Cols() * b.Rows()
}

// Contains reports whether the pixel position lies inside the arena
func (b Board) Contains(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// WrapX maps x into [0, Width) with wraparound
func (b Board) WrapX(x int) int {
	return ((x % b.Width) + b.Width) % b.Width
}

// WrapY maps y into [0, Height) with wraparound
func (b Board) WrapY(y int) int {
	return ((y % b.Height) + b.Height) % b.Height
}

// Aligned reports whether the position sits exactly on the grid
func (b Board) Aligned(x, y int) bool {
	return x%b.CellSize == 0 && y%b.CellSize == 0
}
