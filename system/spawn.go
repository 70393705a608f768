package system

import (
	"errors"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/kobra/board"
	"github.com/lixenwraith/kobra/component"
	"github.com/lixenwraith/kobra/engine"
	"github.com/lixenwraith/kobra/parameter"
)

// ErrBoardFull is returned when no free cell remains for a placement.
var ErrBoardFull = errors.New("spawn: no free cell on the board")

// Placer picks free cells for spawned entities. Sampling is rejection
// based with a bounded attempt count; a crowded board falls back to a
// uniform pick over the enumerated free cells, so placement terminates
// even at one free cell.
type Placer struct {
	rng *rand.Rand
}

func NewPlacer(seed uint64) *Placer {
	return &Placer{rng: rand.New(rand.NewSource(seed))}
}

// Rand exposes the placer's RNG so arena generation shares one seedable
// random stream.
func (p *Placer) Rand() *rand.Rand {
	return p.rng
}

// PlaceAvoiding returns a free grid-aligned cell not present in occupied.
func (p *Placer) PlaceAvoiding(b board.Board, occupied map[component.Cell]struct{}) (component.Cell, error) {
	taken := 0
	for c := range occupied {
		if b.Contains(c.X, c.Y) {
			taken++
		}
	}
	if taken >= b.TotalCells() {
		return component.Cell{}, ErrBoardFull
	}

	for i := 0; i < parameter.SpawnSampleAttempts; i++ {
		c := component.Cell{
			X: p.rng.Intn(b.Cols()) * b.CellSize,
			Y: p.rng.Intn(b.Rows()) * b.CellSize,
		}
		if _, ok := occupied[c]; !ok {
			return c, nil
		}
	}

	// Dense board: enumerate the free cells and pick one uniformly.
	free := make([]component.Cell, 0, b.TotalCells()-taken)
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			c := component.Cell{X: x * b.CellSize, Y: y * b.CellSize}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return component.Cell{}, ErrBoardFull
	}
	return free[p.rng.Intn(len(free))], nil
}

// Spawner keeps the arena stocked with edibles up to a configured count.
type Spawner struct {
	placer *Placer
	target int
}

func NewSpawner(placer *Placer, target int) *Spawner {
	return &Spawner{placer: placer, target: target}
}

func (s *Spawner) SetTarget(n int) {
	s.target = n
}

// Update spawns edibles until the configured count is reached. A full
// board stops early without error; the shortage resolves as the snake
// frees cells.
func (s *Spawner) Update(w *engine.World, b board.Board, snake engine.Entity) {
	missing := s.target - w.Edibles.Len()
	if missing <= 0 {
		return
	}
	occupied := OccupiedCells(w, snake)
	for i := 0; i < missing; i++ {
		cell, err := s.placer.PlaceAvoiding(b, occupied)
		if err != nil {
			return
		}
		s.spawnEdible(w, cell)
		occupied[cell] = struct{}{}
	}
}

func (s *Spawner) spawnEdible(w *engine.World, cell component.Cell) {
	e := w.CreateEntity()
	w.Positions.Set(e, component.At(cell.X, cell.Y))
	food := component.Edible{
		Kind:        component.EdibleApple,
		Points:      parameter.EdiblePoints,
		Growth:      parameter.EdibleGrowth,
		SpeedFactor: parameter.AppleSpeedFactor,
	}
	if s.placer.rng.Float64() < parameter.GrapeChance {
		food.Kind = component.EdibleGrape
		food.SpeedFactor = parameter.GrapeSpeedFactor
	}
	w.Edibles.Set(e, food)
}

// OccupiedCells collects every cell that blocks placement: the snake's
// head and tail, obstacles, and existing edibles.
func OccupiedCells(w *engine.World, snake engine.Entity) map[component.Cell]struct{} {
	occupied := make(map[component.Cell]struct{})
	if pos, ok := w.Positions.Get(snake); ok {
		occupied[component.Cell{X: pos.X, Y: pos.Y}] = struct{}{}
		if itp, ok := w.Interpolations.Get(snake); ok && itp.InFlight(pos) {
			occupied[component.Cell{X: itp.TargetX, Y: itp.TargetY}] = struct{}{}
		}
	}
	if body, ok := w.Bodies.Get(snake); ok {
		for _, seg := range body.Segments {
			occupied[seg] = struct{}{}
		}
	}
	for _, e := range w.Obstacles.Entities() {
		if pos, ok := w.Positions.Get(e); ok {
			occupied[component.Cell{X: pos.X, Y: pos.Y}] = struct{}{}
		}
	}
	for _, e := range w.Edibles.Entities() {
		if pos, ok := w.Positions.Get(e); ok {
			occupied[component.Cell{X: pos.X, Y: pos.Y}] = struct{}{}
		}
	}
	return occupied
}
