package engine

import (
	"testing"
	"time"
)

// fakeTime drives the clock without real sleeping
type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time {
	return f.now
}

func (f *fakeTime) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newTestClock(fps int, ft *fakeTime) *FrameClock {
	c := NewFrameClock(fps)
	c.now = ft.Now
	c.sleep = func(d time.Duration) { ft.Advance(d) }
	return c
}

func TestFrameClockFirstTickIsZero(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	c := newTestClock(60, ft)
	if dt := c.Tick(); dt != 0 {
		t.Errorf("first Tick = %v, want 0", dt)
	}
}

func TestFrameClockFastFrameSleepsToTarget(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	c := newTestClock(50, ft) // 20ms budget
	c.Tick()

	// frame took 5ms, clock should sleep 15ms and report the full budget
	ft.Advance(5 * time.Millisecond)
	dt := c.Tick()
	if dt != 20.0 {
		t.Errorf("limited frame dt = %v, want 20", dt)
	}
}

func TestFrameClockSlowFrameCapped(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	c := newTestClock(50, ft) // 20ms budget, cap at 40ms
	c.Tick()

	ft.Advance(500 * time.Millisecond)
	dt := c.Tick()
	if dt != 40.0 {
		t.Errorf("stalled frame dt = %v, want capped 40", dt)
	}
}

func TestFrameClockSlowFrameUncappedRegion(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	c := newTestClock(50, ft)
	c.Tick()

	ft.Advance(30 * time.Millisecond)
	dt := c.Tick()
	if dt != 30.0 {
		t.Errorf("slow frame dt = %v, want 30", dt)
	}
}

func TestFrameClockReset(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	c := newTestClock(60, ft)
	c.Tick()
	ft.Advance(10 * time.Second) // time spent in a menu

	c.Reset()
	if dt := c.Tick(); dt != 0 {
		t.Errorf("Tick after Reset = %v, want 0", dt)
	}
}

func TestEventQueue(t *testing.T) {
	q := NewEventQueue()
	if ev := q.Drain(); ev != nil {
		t.Errorf("Drain on empty queue = %v, want nil", ev)
	}

	q.Push(EventAppleEaten)
	q.Push(EventDeath)
	ev := q.Drain()
	if len(ev) != 2 || ev[0].Type != EventAppleEaten || ev[1].Type != EventDeath {
		t.Errorf("Drain = %v", ev)
	}
	if q.Len() != 0 {
		t.Error("queue not empty after Drain")
	}
}

func TestEventQueueDropsOldestWhenFull(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < eventQueueCap; i++ {
		q.Push(EventAppleEaten)
	}
	q.Push(EventDeath)

	ev := q.Drain()
	if len(ev) != eventQueueCap {
		t.Fatalf("queue grew past capacity: %d", len(ev))
	}
	if ev[len(ev)-1].Type != EventDeath {
		t.Error("newest event lost instead of oldest")
	}
}
