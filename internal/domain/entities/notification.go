package entities

// NotificationKind discriminates the notification variants delivered by the
// platform's dispatch stream.
type NotificationKind int

const (
	EventCreated NotificationKind = iota + 1
	EventDeleted
	EventUpdated
	EventUserAdded
	EventUserRemoved
)

func (k NotificationKind) String() string {
	switch k {
	case EventCreated:
		return "event_created"
	case EventDeleted:
		return "event_deleted"
	case EventUpdated:
		return "event_updated"
	case EventUserAdded:
		return "event_user_added"
	case EventUserRemoved:
		return "event_user_removed"
	default:
		return "unknown"
	}
}

// Notification is the tagged union routed through the sync engine's single
// entry point. Delivery is at-least-once and order is not guaranteed, so a
// notification carries everything a handler needs: handlers re-derive every
// decision from the snapshot plus a fresh directory lookup.
type Notification struct {
	Kind NotificationKind

	// Event is the snapshot for Created, Deleted, UserAdded and UserRemoved.
	Event ScheduledEvent

	// Update carries the before/after pair for EventUpdated.
	Update *EventUpdate

	// UserID is set for UserAdded and UserRemoved.
	UserID string

	// Locale is the guild's preferred locale, used for user-facing messages.
	Locale string
}
