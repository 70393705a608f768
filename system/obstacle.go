package system

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/kobra/board"
	"github.com/lixenwraith/kobra/component"
	"github.com/lixenwraith/kobra/engine"
	"github.com/lixenwraith/kobra/parameter"
)

// ObstacleCount is the number of obstacle cells a difficulty yields on the
// given board, a fixed fraction of the total cell count rounded down.
func ObstacleCount(d parameter.Difficulty, b board.Board) int {
	return int(float64(b.TotalCells()) * d.ObstacleFraction())
}

// GenerateObstacles builds an obstacle layout for a fresh arena and
// returns the chosen cells. Placement is constructive: candidates exclude
// a corridor ahead of and beside the snake spawn, each placed cell is
// rejected if it would seal a neighboring free cell into a dead end, and a
// finished layout is rejected if it disconnects the free area. Layout
// generation retries a bounded number of times and then keeps the best
// attempt, so a pathological difficulty degrades to fewer obstacles rather
// than looping forever.
func GenerateObstacles(b board.Board, spawnX, spawnY, spawnDX, spawnDY, count int, rng *rand.Rand) []component.Cell {
	if count <= 0 {
		return nil
	}
	candidates := obstacleCandidates(b, spawnX, spawnY, spawnDX, spawnDY)
	if len(candidates) == 0 {
		return nil
	}

	var best, last []component.Cell
	for attempt := 0; attempt < parameter.ObstacleLayoutRetries; attempt++ {
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		placed := make(map[component.Cell]struct{}, count)
		layout := make([]component.Cell, 0, count)
		for _, c := range candidates {
			if len(layout) == count {
				break
			}
			if wouldCreateTrap(c, placed, b) {
				continue
			}
			placed[c] = struct{}{}
			layout = append(layout, c)
		}

		last = layout
		if len(layout) > len(best) && freeAreaConnected(placed, b) {
			best = layout
			if len(best) == count {
				break
			}
		}
	}
	if best == nil {
		return last
	}
	return best
}

// SpawnObstacleEntities materializes a layout into world entities.
func SpawnObstacleEntities(w *engine.World, layout []component.Cell) {
	for _, c := range layout {
		e := w.CreateEntity()
		w.Positions.Set(e, component.At(c.X, c.Y))
		w.Obstacles.Set(e, component.Obstacle{})
	}
}

// obstacleCandidates enumerates every cell outside the protected spawn
// corridor: a strip of cells ahead of the spawn in the travel direction,
// widened sideways, plus the spawn cell itself.
func obstacleCandidates(b board.Board, spawnX, spawnY, spawnDX, spawnDY int) []component.Cell {
	protected := make(map[component.Cell]struct{})
	for ahead := 0; ahead <= parameter.SpawnCorridorAhead; ahead++ {
		cx := b.WrapX(spawnX + spawnDX*ahead*b.CellSize)
		cy := b.WrapY(spawnY + spawnDY*ahead*b.CellSize)
		for side := -parameter.SpawnCorridorBeside; side <= parameter.SpawnCorridorBeside; side++ {
			// Sideways is perpendicular to the travel direction.
			px := b.WrapX(cx + spawnDY*side*b.CellSize)
			py := b.WrapY(cy + spawnDX*side*b.CellSize)
			protected[component.Cell{X: px, Y: py}] = struct{}{}
		}
	}

	candidates := make([]component.Cell, 0, b.TotalCells()-len(protected))
	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			c := component.Cell{X: x * b.CellSize, Y: y * b.CellSize}
			if _, ok := protected[c]; !ok {
				candidates = append(candidates, c)
			}
		}
	}
	return candidates
}

// wouldCreateTrap reports whether placing cand leaves any neighboring free
// cell with three or more blocked sides, a pocket the snake could enter
// but never leave. Board edges count as blocked sides, so pockets against
// a wall are caught too.
func wouldCreateTrap(cand component.Cell, placed map[component.Cell]struct{}, b board.Board) bool {
	for _, n := range adjacent(cand, b.CellSize) {
		if !b.Contains(n.X, n.Y) {
			continue
		}
		if _, ok := placed[n]; ok {
			continue
		}
		blocked := 0
		for _, s := range adjacent(n, b.CellSize) {
			if !b.Contains(s.X, s.Y) || s == cand {
				blocked++
				continue
			}
			if _, ok := placed[s]; ok {
				blocked++
			}
		}
		if blocked >= 3 {
			return true
		}
	}
	return false
}

// freeAreaConnected verifies every free cell is reachable from every
// other via 4-neighbor steps, flood-filling from an arbitrary free cell.
func freeAreaConnected(placed map[component.Cell]struct{}, b board.Board) bool {
	freeTotal := b.TotalCells() - len(placed)
	if freeTotal <= 0 {
		return false
	}

	var start component.Cell
	found := false
	for y := 0; y < b.Rows() && !found; y++ {
		for x := 0; x < b.Cols(); x++ {
			c := component.Cell{X: x * b.CellSize, Y: y * b.CellSize}
			if _, ok := placed[c]; !ok {
				start = c
				found = true
				break
			}
		}
	}

	visited := map[component.Cell]struct{}{start: {}}
	queue := []component.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range adjacent(cur, b.CellSize) {
			if !b.Contains(n.X, n.Y) {
				continue
			}
			if _, ok := placed[n]; ok {
				continue
			}
			if _, ok := visited[n]; ok {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return len(visited) == freeTotal
}

// adjacent lists the four side cells of c without bounds filtering.
// Layout safety checks treat board edges as walls regardless of the wall
// setting: a layout that validates under lethal walls stays valid when
// wrapping is on, but not the other way around.
func adjacent(c component.Cell, cellSize int) [4]component.Cell {
	return [4]component.Cell{
		{X: c.X + cellSize, Y: c.Y},
		{X: c.X - cellSize, Y: c.Y},
		{X: c.X, Y: c.Y + cellSize},
		{X: c.X, Y: c.Y - cellSize},
	}
}
