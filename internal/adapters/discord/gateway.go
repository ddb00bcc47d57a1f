package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"rolesync/internal/domain/entities"
	"rolesync/internal/ports/output"
)

var _ output.EventGateway = (*EventGateway)(nil)

// EventGateway edits scheduled events over the REST API.
type EventGateway struct {
	session *discordgo.Session
}

func NewEventGateway(s *discordgo.Session) *EventGateway {
	return &EventGateway{session: s}
}

func (g *EventGateway) EditEvent(_ context.Context, guildID, eventID string, edit entities.EventEdit) error {
	params := &discordgo.GuildScheduledEventParams{}
	if edit.Name != nil {
		params.Name = *edit.Name
	}
	if edit.Description != nil {
		params.Description = *edit.Description
	}
	if _, err := g.session.GuildScheduledEventEdit(guildID, eventID, params); err != nil {
		return fmt.Errorf("edit scheduled event %s: %w", eventID, err)
	}
	return nil
}
