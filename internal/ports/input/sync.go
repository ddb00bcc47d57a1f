package input

import (
	"context"

	"rolesync/internal/domain/entities"
)

// EventSync is the single entry point of the synchronization engine. Every
// platform notification, whatever its kind, is routed through Handle, which
// makes the engine uniformly testable and replayable.
type EventSync interface {
	Handle(ctx context.Context, n entities.Notification) error
}
