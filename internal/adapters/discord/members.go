package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"rolesync/internal/domain"
	"rolesync/internal/domain/entities"
	"rolesync/internal/ports/output"
)

var _ output.MemberDirectory = (*MemberDirectory)(nil)

// MemberDirectory resolves users to guild members, state first with a REST
// fallback.
type MemberDirectory struct {
	session *discordgo.Session
}

func NewMemberDirectory(s *discordgo.Session) *MemberDirectory {
	return &MemberDirectory{session: s}
}

func (d *MemberDirectory) Member(_ context.Context, guildID, userID string) (*entities.Member, error) {
	m, err := d.session.State.Member(guildID, userID)
	if err != nil {
		m, err = d.session.GuildMember(guildID, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: user %s in guild %s: %v", domain.ErrMemberResolution, userID, guildID, err)
	}
	member := memberFromGateway(m)
	return &member, nil
}

// Members enumerates the whole guild, paginating the member list endpoint.
func (d *MemberDirectory) Members(_ context.Context, guildID string) ([]entities.Member, error) {
	const pageSize = 1000

	var out []entities.Member
	after := ""
	for {
		page, err := d.session.GuildMembers(guildID, after, pageSize)
		if err != nil {
			return nil, fmt.Errorf("list members of guild %s: %w", guildID, err)
		}
		for _, m := range page {
			out = append(out, memberFromGateway(m))
		}
		if len(page) < pageSize {
			return out, nil
		}
		after = page[len(page)-1].User.ID
	}
}
