package entities

// EventStatus is the lifecycle status of a scheduled event.
type EventStatus int

const (
	EventStatusScheduled EventStatus = iota + 1
	EventStatusActive
	EventStatusCompleted
	EventStatusCancelled
)

func (s EventStatus) String() string {
	switch s {
	case EventStatusScheduled:
		return "scheduled"
	case EventStatusActive:
		return "active"
	case EventStatusCompleted:
		return "completed"
	case EventStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ScheduledEvent is a read-only snapshot of a platform scheduled event as
// carried by a notification. The platform owns the entity; snapshots are
// never mutated after construction.
type ScheduledEvent struct {
	ID          string
	GuildID     string
	Name        string
	Description string
	Status      EventStatus
	CreatorID   string // empty when the platform omits the creator
}

// EventUpdate pairs the snapshots before and after an event edit.
type EventUpdate struct {
	Before ScheduledEvent
	After  ScheduledEvent
}

// EventEdit describes a partial edit of a scheduled event. Nil fields are
// left unchanged on the platform.
type EventEdit struct {
	Name        *string
	Description *string
}
