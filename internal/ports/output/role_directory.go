package output

import (
	"context"

	"rolesync/internal/domain/entities"
)

// RoleDirectory is the per-guild collection of named roles, addressed by name
// lookup. Implementations are expected to reflect the platform's live state;
// the engine never caches roles across notifications.
type RoleDirectory interface {
	// FindByName returns the role with the given name, or
	// domain.ErrRoleNotFound when no role in the guild carries it.
	FindByName(ctx context.Context, guildID, name string) (*entities.Role, error)

	Create(ctx context.Context, guildID, name string, mentionable bool) (*entities.Role, error)
	Rename(ctx context.Context, guildID, roleID, newName string) error
	Delete(ctx context.Context, guildID, roleID string) error

	AddToMember(ctx context.Context, guildID, userID, roleID string) error
	RemoveFromMember(ctx context.Context, guildID, userID, roleID string) error
}
