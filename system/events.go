package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/component"
)

// EventKind identifies character event types.
type EventKind string

const (
	EventStateChanged  EventKind = "state_changed"
	EventHealthChanged EventKind = "health_changed"
	EventDied          EventKind = "died"
	EventPerfectDodge  EventKind = "perfect_dodge"
	EventEnemyDefeated EventKind = "enemy_defeated"
	EventWallBounce    EventKind = "wall_bounce"
	EventTeleported    EventKind = "teleported"
)

// Event is a character event payload. Data holds one of StateChange,
// component.HealthChange, WallBounce, component.Enemy or mgl64.Vec3.
type Event struct {
	Kind EventKind
	Data any
}

// StateChange is the payload of EventStateChanged.
type StateChange struct {
	From component.CharacterState
	To   component.CharacterState
}

// WallBounce is the payload of EventWallBounce.
type WallBounce struct {
	Point   mgl64.Vec3
	Normal  mgl64.Vec3
	Impulse mgl64.Vec3
}

// EventQueue is a simple FIFO queue the host drains after each tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
