package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"rolesync/internal/domain"
	"rolesync/internal/domain/entities"
	"rolesync/internal/ports/output"
	pkgdiscord "rolesync/pkg/discord"
)

var _ output.RoleDirectory = (*RoleDirectory)(nil)

// RoleDirectory adapts the guild's role collection. Reads go through the
// session state when it is populated and fall back to the REST API, the same
// cache-or-fetch pattern the member lookups use. Mutations that hit an
// already-gone role or member are treated as no-ops: another in-flight
// handler may have won the race, and the engine's model is lookup-then-act,
// not act-unconditionally.
type RoleDirectory struct {
	session *discordgo.Session
}

func NewRoleDirectory(s *discordgo.Session) *RoleDirectory {
	return &RoleDirectory{session: s}
}

func (d *RoleDirectory) FindByName(_ context.Context, guildID, name string) (*entities.Role, error) {
	roles, err := d.guildRoles(guildID)
	if err != nil {
		return nil, fmt.Errorf("list roles of guild %s: %w", guildID, err)
	}
	for _, r := range roles {
		if r.Name == name {
			return roleFromGateway(guildID, r), nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (d *RoleDirectory) guildRoles(guildID string) ([]*discordgo.Role, error) {
	if g, err := d.session.State.Guild(guildID); err == nil && len(g.Roles) > 0 {
		return g.Roles, nil
	}
	return d.session.GuildRoles(guildID)
}

func (d *RoleDirectory) Create(_ context.Context, guildID, name string, mentionable bool) (*entities.Role, error) {
	role, err := d.session.GuildRoleCreate(guildID, &discordgo.RoleParams{
		Name:        name,
		Mentionable: &mentionable,
	})
	if err != nil {
		return nil, fmt.Errorf("create role %q: %w", name, err)
	}
	return roleFromGateway(guildID, role), nil
}

func (d *RoleDirectory) Rename(_ context.Context, guildID, roleID, newName string) error {
	_, err := d.session.GuildRoleEdit(guildID, roleID, &discordgo.RoleParams{Name: newName})
	if err != nil {
		return fmt.Errorf("rename role %s: %w", roleID, err)
	}
	return nil
}

func (d *RoleDirectory) Delete(_ context.Context, guildID, roleID string) error {
	err := d.session.GuildRoleDelete(guildID, roleID)
	if err != nil && !pkgdiscord.IsUnknownRole(err) {
		return fmt.Errorf("delete role %s: %w", roleID, err)
	}
	return nil
}

func (d *RoleDirectory) AddToMember(_ context.Context, guildID, userID, roleID string) error {
	err := d.session.GuildMemberRoleAdd(guildID, userID, roleID)
	if err != nil && !pkgdiscord.IsUnknownRole(err) && !pkgdiscord.IsUnknownMember(err) {
		return fmt.Errorf("add role %s to member %s: %w", roleID, userID, err)
	}
	return nil
}

func (d *RoleDirectory) RemoveFromMember(_ context.Context, guildID, userID, roleID string) error {
	err := d.session.GuildMemberRoleRemove(guildID, userID, roleID)
	if err != nil && !pkgdiscord.IsUnknownRole(err) && !pkgdiscord.IsUnknownMember(err) {
		return fmt.Errorf("remove role %s from member %s: %w", roleID, userID, err)
	}
	return nil
}
