package parameter

import "time"

// Grid geometry
const (
	// DefaultCellSize is the side of one grid cell in board pixels
	DefaultCellSize = 20

	// MinCellSize is the smallest cell the renderer can still subdivide
	MinCellSize = 8

	// MinCellsPerSide / MaxCellsPerSide bound the settings menu range
	MinCellsPerSide = 10
	MaxCellsPerSide = 60
)

// Frame pacing
const (
	TargetFPS = 60

	// TargetFrameInterval is the frame budget for the fixed-timestep clock
	TargetFrameInterval = time.Second / TargetFPS

	// FrameTimeCapFactor caps delta time at this multiple of the frame
	// budget so a stalled frame cannot trigger runaway catch-up
	FrameTimeCapFactor = 2.0
)

// Speed model, in cells per second
const (
	DefaultInitialSpeed = 4.0
	DefaultMaxSpeed     = 20.0

	MinInitialSpeed = 1.0
	MaxInitialSpeed = 40.0
	MinMaxSpeed     = 4.0
	MaxMaxSpeed     = 60.0

	// AppleSpeedFactor is applied to the current speed on each apple eaten
	AppleSpeedFactor = 1.1

	// GrapeSpeedFactor slows the snake down instead
	GrapeSpeedFactor = 0.8
)

// Edible tuning
const (
	EdiblePoints = 10
	EdibleGrowth = 1

	// GrapeChance is the probability that a respawned edible is a grape
	GrapeChance = 0.15

	MinApples = 1
	MaxApples = 30
)

// Spawn placement
const (
	// SpawnSampleAttempts bounds rejection sampling before falling back to
	// a deterministic scan of the free cells
	SpawnSampleAttempts = 1000

	// ObstacleLayoutRetries bounds whole-layout regeneration when a layout
	// fails the connectivity check
	ObstacleLayoutRetries = 100

	// Obstacle placement keeps this corridor ahead of and beside the snake
	// spawn cell free, in cells
	SpawnCorridorAhead  = 8
	SpawnCorridorBeside = 2
)
