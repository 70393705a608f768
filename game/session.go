// Package game ties the systems together: round lifecycle, mode handling,
// menus and the frame loop.
package game

import (
	"fmt"

	"github.com/lixenwraith/kobra/board"
	"github.com/lixenwraith/kobra/component"
	"github.com/lixenwraith/kobra/config"
	"github.com/lixenwraith/kobra/engine"
	"github.com/lixenwraith/kobra/input"
	"github.com/lixenwraith/kobra/parameter"
	"github.com/lixenwraith/kobra/system"
)

// Session is one configured arena: the world, the snake, the systems that
// drive it and the per-round score. Rounds reset within a session; a
// geometry change builds a new session.
type Session struct {
	World *engine.World
	Board board.Board
	Snake engine.Entity

	Speed  system.Speed
	Score  int
	Events *engine.EventQueue

	// LastDeath records what killed the snake in the current round
	LastDeath system.DeathReason

	motion  system.Motion
	placer  *system.Placer
	spawner *system.Spawner

	settings config.Settings
}

// NewSession builds an arena from validated settings
func NewSession(settings config.Settings, seed uint64) (*Session, error) {
	dim := settings.BoardDimension()
	b, err := board.New(dim, dim, parameter.DefaultCellSize)
	if err != nil {
		return nil, fmt.Errorf("build board: %w", err)
	}

	s := &Session{
		World:    engine.NewWorld(),
		Board:    b,
		Speed:    system.NewSpeed(settings.InitialSpeed, settings.MaxSpeed),
		Events:   engine.NewEventQueue(),
		placer:   system.NewPlacer(seed),
		settings: settings,
	}
	s.spawner = system.NewSpawner(s.placer, settings.Apples)

	s.Snake = s.World.CreateEntity()
	s.spawnSnake()
	s.spawnObstacles()
	s.spawner.Update(s.World, s.Board, s.Snake)
	return s, nil
}

// spawnSnake parks the snake at the spawn cell heading right, one head
// segment, no tail.
func (s *Session) spawnSnake() {
	spawnX, spawnY := s.spawnCell()
	s.World.Positions.Set(s.Snake, component.At(spawnX, spawnY))
	s.World.Velocities.Set(s.Snake, component.Velocity{DX: 1, DY: 0})
	s.World.Bodies.Set(s.Snake, component.SnakeBody{Alive: true})
	s.World.Interpolations.Set(s.Snake, component.Interpolation{TargetX: spawnX, TargetY: spawnY})
}

// spawnObstacles generates the session's obstacle layout once; rounds
// within a session reuse it.
func (s *Session) spawnObstacles() {
	spawnX, spawnY := s.spawnCell()
	count := system.ObstacleCount(s.settings.Difficulty, s.Board)
	layout := system.GenerateObstacles(s.Board, spawnX, spawnY, 1, 0, count, s.placer.Rand())
	system.SpawnObstacleEntities(s.World, layout)
}

// spawnCell is the snake's canonical starting cell, one cell in from the
// top-left corner. Obstacle placement keeps the corridor ahead of it free.
func (s *Session) spawnCell() (int, int) {
	return s.Board.CellSize, s.Board.CellSize
}

// Update advances one frame of gameplay and translates outcomes into
// queued events. Dead snakes freeze until the round resets.
func (s *Session) Update(dtMs float64) {
	res := s.motion.Update(s.World, s.Snake, s.Board, dtMs, s.Speed.Current, s.settings.LethalWalls)

	if res.Died {
		s.LastDeath = res.Reason
		s.Events.Push(engine.EventDeath)
		return
	}
	if res.Committed && res.Ate != 0 {
		s.World.DestroyEntity(res.Ate)
		s.Score += res.Food.Points
		s.Speed.ApplyFactor(res.Food.SpeedFactor)
		if res.Food.Kind == component.EdibleGrape {
			s.Events.Push(engine.EventGrapeEaten)
		} else {
			s.Events.Push(engine.EventAppleEaten)
		}
		s.spawner.Update(s.World, s.Board, s.Snake)
	}
}

// Steer applies a direction change, rejecting reversals into the neck
func (s *Session) Steer(next component.Velocity) {
	cur, _ := s.World.Velocities.Get(s.Snake)
	if !input.AllowedTurn(cur, next) {
		return
	}
	s.World.Velocities.Set(s.Snake, next)
}

// Alive reports whether the current round is still running
func (s *Session) Alive() bool {
	body, ok := s.World.Bodies.Get(s.Snake)
	return ok && body.Alive
}

// ResetRound restarts play in the same arena: score and speed back to
// initial, snake respawned, edibles refreshed. Obstacles stay as
// generated; the arena layout is a property of the session. Runs between
// frames only, never mid-update.
func (s *Session) ResetRound() {
	s.Score = 0
	s.LastDeath = system.ReasonNone
	s.Speed.Reset()
	s.Events.Drain()

	s.spawnSnake()
	s.motion.Halt(s.World, s.Snake)
	s.World.ClearEdibles()
	s.spawner.Update(s.World, s.Board, s.Snake)
}

// ApplyLive updates the settings that do not require an arena rebuild
func (s *Session) ApplyLive(settings config.Settings) {
	s.settings.MaxSpeed = settings.MaxSpeed
	s.settings.LethalWalls = settings.LethalWalls
	s.settings.EatSound = settings.EatSound
	s.settings.DeathSound = settings.DeathSound
	s.settings.Music = settings.Music
	s.Speed.Max = settings.MaxSpeed
	if s.Speed.Current > s.Speed.Max {
		s.Speed.Current = s.Speed.Max
	}
}

// Settings returns the session's active settings
func (s *Session) Settings() config.Settings {
	return s.settings
}
