package ecs

// EventType identifies gameplay events raised by systems during a frame.
type EventType string

const (
	EventPlayerDamaged     EventType = "player_damaged"
	EventPlayerDied        EventType = "player_died"
	EventPickupCollected   EventType = "pickup_collected"
	EventProjectileFired   EventType = "projectile_fired"
	EventExitActivated     EventType = "exit_activated"
	EventExitDeactivated   EventType = "exit_deactivated"
	EventProjectileBlocked EventType = "projectile_blocked"
)

// Event is a gameplay event payload. Amount carries damage or remaining
// health depending on Type.
type Event struct {
	Type   EventType
	Entity Entity
	Amount int
}

// EventQueue is a simple FIFO queue.
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
