package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"rolesync/internal/adapters/discord"
	"rolesync/internal/config"
	"rolesync/internal/infrastructure/database"
	"rolesync/internal/infrastructure/i18n"
	"rolesync/internal/infrastructure/logger"
	"rolesync/internal/infrastructure/metrics"
	"rolesync/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ invalid configuration: %v", err)
	}

	zlog := logger.New(cfg.Environment)
	defer zlog.Sync()

	translator := i18n.NewTranslator(cfg.DefaultLocale, zlog)
	m := metrics.New()
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, zlog)
	}

	var journal output.SyncJournal = output.NopJournal{}
	if cfg.DatabaseURL != "" {
		version, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
		if err != nil {
			zlog.Fatal("database migration failed", zap.Error(err))
		}
		zlog.Info("✅ migrations applied", zap.Uint("version", version))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			zlog.Fatal("database connection failed", zap.Error(err))
		}
		defer pool.Close()
		zlog.Info("✅ PostgreSQL connected, role-action journal enabled")

		journal = database.NewJournalRepository(pool)
	}
	journal = metrics.InstrumentJournal(m, journal)

	bot, err := discord.NewBot(cfg, journal, translator, m, zlog)
	if err != nil {
		zlog.Fatal("bot initialization failed", zap.Error(err))
	}
	if err := bot.Start(); err != nil {
		zlog.Error("bot stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func serveMetrics(addr string, zlog *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	zlog.Info("metrics listener started", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		zlog.Error("metrics listener failed", zap.Error(err))
	}
}
