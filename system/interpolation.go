// Package system implements the gameplay systems: movement resolution,
// interpolation, spawn placement, obstacle generation and audio triggers.
// Systems are single-owner mutators invoked synchronously in a fixed order
// within one frame; none of them holds a reference to another.
package system

import (
	"math"

	"github.com/lixenwraith/kobra/board"
	"github.com/lixenwraith/kobra/component"
)

// AdvanceAlpha accumulates interpolation progress for one frame.
// moveInterval is derived from the current speed on every call, so a speed
// change takes effect on the very next partial step.
func AdvanceAlpha(dtMs, speedCellsPerSec, alpha float64) (newAlpha float64, completed bool) {
	if speedCellsPerSec <= 0 {
		return alpha, false
	}
	moveIntervalMs := 1000.0 / speedCellsPerSec
	newAlpha = alpha + dtMs/moveIntervalMs
	if newAlpha >= 1.0 {
		return 1.0, true
	}
	if newAlpha < 0 {
		newAlpha = 0
	}
	return newAlpha, false
}

// WillWrapAround reports whether a transition from origin to dest crosses
// the board boundary on that axis. A wrapping edge is one whose span is
// within one cell of the full arena dimension.
func WillWrapAround(origin, dest, limit, cellSize int) bool {
	d := origin - dest
	if d < 0 {
		d = -d
	}
	d -= limit
	if d < 0 {
		d = -d
	}
	return d <= cellSize
}

// DetectWrap classifies the axes of a transition that wrap. Lethal-wall
// mode never reports wrapping: crossing a lethal boundary is a death, not
// a transition.
func DetectWrap(originX, originY, destX, destY int, b board.Board, lethalWalls bool) component.WrapAxis {
	if lethalWalls {
		return component.WrapNone
	}
	x := WillWrapAround(originX, destX, b.Width, b.CellSize)
	y := WillWrapAround(originY, destY, b.Height, b.CellSize)
	switch {
	case x && y:
		return component.WrapBoth
	case x:
		return component.WrapX
	case y:
		return component.WrapY
	}
	return component.WrapNone
}

// DrawPosition computes the renderer-facing coordinate for one axis of an
// in-flight transition.
//
// A non-wrapped axis interpolates linearly from prev to current. A wrapped
// axis extrapolates in the velocity direction instead, so motion stays
// visually continuous across the seam rather than sweeping backward
// through the whole board; the result is wrapped into [0, limit).
// At alpha 1.0 both forms land exactly on current.
func DrawPosition(prev, current int, alpha float64, wrapped bool, velocity, cellSize, limit int) float64 {
	if !wrapped {
		return float64(prev) + float64(current-prev)*alpha
	}
	draw := math.Mod(float64(prev)+float64(velocity*cellSize)*alpha, float64(limit))
	if draw < 0 {
		draw += float64(limit)
	}
	return draw
}

// WrapVelocity infers the travel direction for one axis of a transition.
// For a wrapping edge the arithmetic difference points the wrong way
// (nearly the whole arena), so the sign is flipped.
// Used for tail segments, whose velocity is not stored anywhere.
func WrapVelocity(prev, current, limit int) int {
	d := current - prev
	if d == 0 {
		return 0
	}
	if d > limit/2 {
		return -1
	}
	if d < -limit/2 {
		return 1
	}
	if d > 0 {
		return 1
	}
	return -1
}

// DuplicatePosition returns the companion draw coordinate on the opposite
// edge during a wrapping transition, so the entity appears to exit one
// side while entering the other. ok is false when the position is not
// within one cell of an edge and no duplicate is needed.
func DuplicatePosition(draw float64, cellSize, limit int) (float64, bool) {
	if draw >= float64(limit-cellSize) {
		return draw - float64(limit), true
	}
	if draw < float64(cellSize) {
		return draw + float64(limit), true
	}
	return draw, false
}
