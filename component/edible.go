package component

// EdibleKind distinguishes the fruit variants
type EdibleKind uint8

const (
	EdibleApple EdibleKind = iota
	EdibleGrape
)

// Edible marks an entity the snake can consume. SpeedFactor multiplies the
// current speed on consumption; apples accelerate, grapes slow down.
type Edible struct {
	Kind        EdibleKind
	Points      int
	Growth      int
	SpeedFactor float64
}
