package component

// Obstacle tags a static lethal cell, created once at arena reset
type Obstacle struct{}
