package output

import (
	"context"

	"rolesync/internal/domain/entities"
)

// MemberDirectory resolves and enumerates guild members.
type MemberDirectory interface {
	// Member resolves a user to a guild member, from cache or by fetching
	// remotely. Returns domain.ErrMemberResolution when the user cannot be
	// resolved (left the guild, fetch failure).
	Member(ctx context.Context, guildID, userID string) (*entities.Member, error)

	// Members enumerates every member of the guild.
	Members(ctx context.Context, guildID string) ([]entities.Member, error)
}
