package discord

import (
	"github.com/bwmarrin/discordgo"

	"rolesync/internal/domain/entities"
)

func eventFromGateway(e *discordgo.GuildScheduledEvent) entities.ScheduledEvent {
	event := entities.ScheduledEvent{
		ID:          e.ID,
		GuildID:     e.GuildID,
		Name:        e.Name,
		Description: e.Description,
		Status:      statusFromGateway(e.Status),
		CreatorID:   e.CreatorID,
	}
	if event.CreatorID == "" && e.Creator != nil {
		event.CreatorID = e.Creator.ID
	}
	return event
}

func statusFromGateway(s discordgo.GuildScheduledEventStatus) entities.EventStatus {
	switch s {
	case discordgo.GuildScheduledEventStatusScheduled:
		return entities.EventStatusScheduled
	case discordgo.GuildScheduledEventStatusActive:
		return entities.EventStatusActive
	case discordgo.GuildScheduledEventStatusCompleted:
		return entities.EventStatusCompleted
	case discordgo.GuildScheduledEventStatusCanceled:
		return entities.EventStatusCancelled
	default:
		return 0
	}
}

func roleFromGateway(guildID string, r *discordgo.Role) *entities.Role {
	return &entities.Role{
		ID:          r.ID,
		GuildID:     guildID,
		Name:        r.Name,
		Mentionable: r.Mentionable,
	}
}

func memberFromGateway(m *discordgo.Member) entities.Member {
	member := entities.Member{
		RoleIDs: m.Roles,
	}
	if m.User != nil {
		member.UserID = m.User.ID
		member.DisplayName = m.User.Username
		if m.User.GlobalName != "" {
			member.DisplayName = m.User.GlobalName
		}
	}
	if m.Nick != "" {
		member.DisplayName = m.Nick
	}
	return member
}
