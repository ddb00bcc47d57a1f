package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"rolesync/internal/ports/output"
)

var _ output.Notifier = (*Notifier)(nil)

// Notifier sends direct messages through a per-user DM channel.
type Notifier struct {
	session *discordgo.Session
}

func NewNotifier(s *discordgo.Session) *Notifier {
	return &Notifier{session: s}
}

func (n *Notifier) DirectMessage(_ context.Context, userID, content string) error {
	ch, err := n.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("open DM channel with %s: %w", userID, err)
	}
	if _, err := n.session.ChannelMessageSend(ch.ID, content); err != nil {
		return fmt.Errorf("send DM to %s: %w", userID, err)
	}
	return nil
}
