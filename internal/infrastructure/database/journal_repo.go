package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"rolesync/internal/domain/entities"
	"rolesync/internal/ports/output"
)

var _ output.SyncJournal = (*JournalRepository)(nil)

// JournalRepository appends executed role operations to the role_actions
// table. Nothing in the sync path reads this table; it exists for operator
// audit of what the bot did and when.
type JournalRepository struct {
	pool *pgxpool.Pool
}

func NewJournalRepository(pool *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{pool: pool}
}

func (r *JournalRepository) Record(ctx context.Context, a entities.RoleAction) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO role_actions (guild_id, event_id, action, role_name, detail, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.GuildID, a.EventID, a.Action, a.RoleName, a.Detail, a.At,
	)
	if err != nil {
		return fmt.Errorf("insert role action: %w", err)
	}
	return nil
}
