package system

import (
	"errors"
	"testing"

	"github.com/lixenwraith/kobra/board"
	"github.com/lixenwraith/kobra/component"
	"github.com/lixenwraith/kobra/engine"
)

func TestPlaceAvoidingFindsFreeCell(t *testing.T) {
	b, _ := board.New(200, 200, 20)
	placer := NewPlacer(1)

	occupied := map[component.Cell]struct{}{
		{X: 0, Y: 0}:  {},
		{X: 20, Y: 0}: {},
	}
	cell, err := placer.PlaceAvoiding(b, occupied)
	if err != nil {
		t.Fatalf("PlaceAvoiding: %v", err)
	}
	if _, taken := occupied[cell]; taken {
		t.Errorf("placed on occupied cell %v", cell)
	}
	if !b.Contains(cell.X, cell.Y) || !b.Aligned(cell.X, cell.Y) {
		t.Errorf("placed off-grid at %v", cell)
	}
}

func TestPlaceAvoidingSingleFreeCell(t *testing.T) {
	// Rejection sampling degrades on a nearly full board; the scan
	// fallback must still find the one remaining cell.
	b, _ := board.New(100, 100, 20)
	placer := NewPlacer(7)

	want := component.Cell{X: 60, Y: 40}
	occupied := make(map[component.Cell]struct{})
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			c := component.Cell{X: x * b.CellSize, Y: y * b.CellSize}
			if c != want {
				occupied[c] = struct{}{}
			}
		}
	}
	cell, err := placer.PlaceAvoiding(b, occupied)
	if err != nil {
		t.Fatalf("PlaceAvoiding: %v", err)
	}
	if cell != want {
		t.Errorf("got %v, want %v", cell, want)
	}
}

func TestPlaceAvoidingFullBoard(t *testing.T) {
	b, _ := board.New(60, 60, 20)
	placer := NewPlacer(3)

	occupied := make(map[component.Cell]struct{})
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			occupied[component.Cell{X: x * b.CellSize, Y: y * b.CellSize}] = struct{}{}
		}
	}
	_, err := placer.PlaceAvoiding(b, occupied)
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("got %v, want ErrBoardFull", err)
	}
}

func TestSpawnerTopsUp(t *testing.T) {
	w := engine.NewWorld()
	b, _ := board.New(600, 600, 20)
	snake := newTestSnake(w, 100, 100, 1, 0)

	spawner := NewSpawner(NewPlacer(11), 5)
	spawner.Update(w, b, snake)
	if got := w.Edibles.Len(); got != 5 {
		t.Fatalf("edibles after top-up = %d, want 5", got)
	}

	// Spawned edibles never land on the snake or on each other.
	seen := make(map[component.Cell]struct{})
	for _, e := range w.Edibles.Entities() {
		pos, _ := w.Positions.Get(e)
		c := component.Cell{X: pos.X, Y: pos.Y}
		if c == (component.Cell{X: 100, Y: 100}) {
			t.Errorf("edible on snake head at %v", c)
		}
		if _, dup := seen[c]; dup {
			t.Errorf("two edibles share cell %v", c)
		}
		seen[c] = struct{}{}
	}

	// A second update with the count already met is a no-op.
	spawner.Update(w, b, snake)
	if got := w.Edibles.Len(); got != 5 {
		t.Errorf("edibles after redundant update = %d, want 5", got)
	}
}

func TestSpawnerFullBoardStopsEarly(t *testing.T) {
	w := engine.NewWorld()
	b, _ := board.New(60, 60, 20)
	snake := newTestSnake(w, 0, 0, 1, 0)
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			if x == 0 && y == 0 {
				continue
			}
			placeObstacle(w, x*b.CellSize, y*b.CellSize)
		}
	}

	spawner := NewSpawner(NewPlacer(5), 3)
	spawner.Update(w, b, snake)
	if got := w.Edibles.Len(); got != 0 {
		t.Errorf("edibles on full board = %d, want 0", got)
	}
}
