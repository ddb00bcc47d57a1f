package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"rolesync/internal/domain/entities"
)

// onGuildCreate primes the snapshot cache from the platform's live scheduled
// events. Role existence is the durable state; these snapshots only restore
// rename detection after a restart.
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	events, err := s.GuildScheduledEvents(g.ID, false)
	if err != nil {
		b.logger.Warn("could not list scheduled events",
			zap.String("guild_id", g.ID),
			zap.Error(err))
		return
	}
	for _, e := range events {
		b.cache.put(eventFromGateway(e))
	}
	b.logger.Info("scheduled event snapshots primed",
		zap.String("guild_id", g.ID),
		zap.Int("count", len(events)))
}

func (b *Bot) onEventCreate(_ *discordgo.Session, e *discordgo.GuildScheduledEventCreate) {
	event := eventFromGateway(e.GuildScheduledEvent)
	b.cache.put(event)
	b.dispatch(entities.Notification{
		Kind:   entities.EventCreated,
		Event:  event,
		Locale: b.guildLocale(event.GuildID),
	})
}

func (b *Bot) onEventUpdate(_ *discordgo.Session, e *discordgo.GuildScheduledEventUpdate) {
	after := eventFromGateway(e.GuildScheduledEvent)
	before, ok := b.cache.get(after.ID)
	if !ok {
		// Without a previous snapshot no rename can be detected; the update
		// still has to run for the completion check.
		b.logger.Warn("no cached snapshot for updated event",
			zap.String("event_id", after.ID))
		before = after
	}
	b.cache.put(after)
	b.dispatch(entities.Notification{
		Kind:   entities.EventUpdated,
		Update: &entities.EventUpdate{Before: before, After: after},
		Locale: b.guildLocale(after.GuildID),
	})
}

func (b *Bot) onEventDelete(_ *discordgo.Session, e *discordgo.GuildScheduledEventDelete) {
	event := eventFromGateway(e.GuildScheduledEvent)
	b.cache.evict(event.ID)
	b.dispatch(entities.Notification{
		Kind:   entities.EventDeleted,
		Event:  event,
		Locale: b.guildLocale(event.GuildID),
	})
}

func (b *Bot) onEventUserAdd(s *discordgo.Session, e *discordgo.GuildScheduledEventUserAdd) {
	event, ok := b.eventSnapshot(s, e.GuildID, e.GuildScheduledEventID)
	if !ok {
		return
	}
	b.dispatch(entities.Notification{
		Kind:   entities.EventUserAdded,
		Event:  event,
		UserID: e.UserID,
		Locale: b.guildLocale(e.GuildID),
	})
}

func (b *Bot) onEventUserRemove(s *discordgo.Session, e *discordgo.GuildScheduledEventUserRemove) {
	event, ok := b.eventSnapshot(s, e.GuildID, e.GuildScheduledEventID)
	if !ok {
		return
	}
	b.dispatch(entities.Notification{
		Kind:   entities.EventUserRemoved,
		Event:  event,
		UserID: e.UserID,
		Locale: b.guildLocale(e.GuildID),
	})
}

// eventSnapshot resolves an event id to a snapshot, from the cache or by
// fetching remotely. A fetch miss (the event may already be gone) drops the
// notification, which the engine treats as nothing to do anyway.
func (b *Bot) eventSnapshot(s *discordgo.Session, guildID, eventID string) (entities.ScheduledEvent, bool) {
	if event, ok := b.cache.get(eventID); ok {
		return event, true
	}
	gse, err := s.GuildScheduledEvent(guildID, eventID, false)
	if err != nil {
		b.logger.Warn("could not fetch scheduled event",
			zap.String("guild_id", guildID),
			zap.String("event_id", eventID),
			zap.Error(err))
		return entities.ScheduledEvent{}, false
	}
	event := eventFromGateway(gse)
	b.cache.put(event)
	return event, true
}

// dispatch hands one notification to the sync engine. Failures are logged
// and dropped here; they never crash the process or block other
// notifications.
func (b *Bot) dispatch(n entities.Notification) {
	outcome := "ok"
	if err := b.sync.Handle(context.Background(), n); err != nil {
		outcome = "error"
		b.logger.Error("notification handling failed",
			zap.String("kind", n.Kind.String()),
			zap.Error(err))
	}
	b.metrics.NotificationsTotal.WithLabelValues(n.Kind.String(), outcome).Inc()
}

func (b *Bot) guildLocale(guildID string) string {
	g, err := b.session.State.Guild(guildID)
	if err != nil {
		return ""
	}
	return g.PreferredLocale
}
