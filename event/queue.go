package event

import (
	"sync"

	"github.com/lixenwraith/snek3d/parameter"
)

// EventQueue is an unbounded FIFO of game events
// Thread-Safety:
//   - Push: multiple producers OK
//   - Consume: single consumer (frame loop)
//
// No overflow policy: a game-over notification is never dropped
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, parameter.EventQueueSize)}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	eq.events = append(eq.events, event)
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}
