package output

import (
	"context"

	"rolesync/internal/domain/entities"
)

// EventGateway edits scheduled events on the platform. Editing an event
// synchronously re-fires an update notification, which is why the engine
// marker-encodes descriptions before calling this.
type EventGateway interface {
	EditEvent(ctx context.Context, guildID, eventID string, edit entities.EventEdit) error
}
