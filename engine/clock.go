package engine

import (
	"time"

	"github.com/lixenwraith/kobra/parameter"
)

// FrameClock paces the frame loop at a fixed target rate and reports the
// delta time each frame should integrate.
//
// Delta time is capped at FrameTimeCapFactor times the frame budget so a
// long stall (window drag, suspend) cannot trigger runaway catch-up. When
// a frame finishes early the clock sleeps out the remainder, which is the
// loop's only suspension point, bounded by one frame interval.
type FrameClock struct {
	targetInterval time.Duration
	last           time.Time

	// injectable for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameClock creates a clock pacing at the given frames per second
func NewFrameClock(fps int) *FrameClock {
	if fps <= 0 {
		fps = parameter.TargetFPS
	}
	return &FrameClock{
		targetInterval: time.Second / time.Duration(fps),
		now:            time.Now,
		sleep:          time.Sleep,
	}
}

// Tick waits out the remainder of the current frame and returns the delta
// time in milliseconds to advance the simulation by. The first call
// returns 0.
func (c *FrameClock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	frame := now.Sub(c.last)
	c.last = now

	cap := time.Duration(float64(c.targetInterval) * parameter.FrameTimeCapFactor)
	if frame > cap {
		frame = cap
	}

	if frame < c.targetInterval {
		c.sleep(c.targetInterval - frame)
		c.last = c.now()
		return float64(c.targetInterval.Microseconds()) / 1000.0
	}

	return float64(frame.Microseconds()) / 1000.0
}

// Reset forgets the previous frame, so the next Tick returns 0 instead of
// integrating time spent outside the loop (menus, game-over prompt)
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}

// TargetInterval returns the frame budget
func (c *FrameClock) TargetInterval() time.Duration {
	return c.targetInterval
}
