package engine

import "sync"

// EventType discriminates gameplay events carried from the resolver to
// side-effect systems (audio). Producers never call consumers directly.
type EventType uint8

const (
	EventNone EventType = iota

	// EventAppleEaten fires once per apple consumed on a move commit
	EventAppleEaten

	// EventGrapeEaten fires once per grape consumed on a move commit
	EventGrapeEaten

	// EventDeath fires once when a move resolves to a death outcome
	EventDeath
)

// Event is one queued gameplay event
type Event struct {
	Type EventType
}

const eventQueueCap = 64

// EventQueue is a bounded FIFO drained once per frame by the consumer.
// When full the oldest event is dropped; gameplay events are
// fire-and-forget triggers, so losing the oldest under pathological load
// is acceptable.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, eventQueueCap)}
}

// Push appends an event, dropping the oldest when the queue is full
func (q *EventQueue) Push(t EventType) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) >= eventQueueCap {
		copy(q.events, q.events[1:])
		q.events = q.events[:len(q.events)-1]
	}
	q.events = append(q.events, Event{Type: t})
}

// Drain returns all queued events and empties the queue
func (q *EventQueue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
