package output

import (
	"context"

	"rolesync/internal/domain/entities"
)

// SyncJournal records executed role operations for audit. Writes are
// best-effort: the engine logs a failed write and moves on, and nothing ever
// reads the journal back into sync decisions.
type SyncJournal interface {
	Record(ctx context.Context, action entities.RoleAction) error
}

// NopJournal is the journal wired when no database is configured.
type NopJournal struct{}

func (NopJournal) Record(context.Context, entities.RoleAction) error { return nil }
