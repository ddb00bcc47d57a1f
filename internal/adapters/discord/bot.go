package discord

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"rolesync/internal/application"
	"rolesync/internal/config"
	"rolesync/internal/infrastructure/metrics"
	"rolesync/internal/ports/input"
	"rolesync/internal/ports/output"
)

// Bot is the Discord adapter: it owns the gateway session, translates
// dispatch events into domain notifications and feeds them to the sync
// engine. discordgo runs each handler invocation on its own goroutine, which
// gives the concurrent, unordered delivery model the engine is built for.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	sync    input.EventSync
	cache   *snapshotCache
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewBot creates the session and wires ports: platform adapters -> sync
// engine -> gateway handlers.
func NewBot(
	cfg *config.Config,
	journal output.SyncJournal,
	translator output.T,
	m *metrics.Metrics,
	logger *zap.Logger,
) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMembers |
		discordgo.IntentGuildScheduledEvents

	syncService := application.NewSyncService(
		NewRoleDirectory(s),
		NewMemberDirectory(s),
		NewEventGateway(s),
		NewNotifier(s),
		journal,
		translator,
		logger,
	)

	bot := &Bot{
		session: s,
		config:  cfg,
		sync:    syncService,
		cache:   newSnapshotCache(),
		metrics: m,
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.onGuildCreate)
	b.session.AddHandler(b.onEventCreate)
	b.session.AddHandler(b.onEventUpdate)
	b.session.AddHandler(b.onEventDelete)
	b.session.AddHandler(b.onEventUserAdd)
	b.session.AddHandler(b.onEventUserRemove)
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	b.logger.Info("🤖 bot online, press CTRL+C to quit")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
