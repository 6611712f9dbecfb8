package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"modbot/internal/classifier"
	"modbot/internal/config"
	"modbot/internal/incidents"
	"modbot/internal/moderation"
	"modbot/internal/repository"
	"modbot/internal/server"
	"modbot/internal/telegram_bot"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid config", zap.Error(err))
	}

	// Database connection for the decisions audit trail. The bot keeps open
	// incidents in memory only, so it runs fine without a database.
	var decisionRepo repository.DecisionRepository
	if cfg.Database.URL != "" {
		db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
		if err != nil {
			logger.Warn("Database unavailable, continuing without decision audit", zap.Error(err))
		} else {
			defer db.Close()
			repository.MigrateDB(db, logger)
			decisionRepo = repository.NewDecisionRepository(db, logger)
		}
	}

	// Telegram client and moderation components
	client, err := telegram_bot.NewClient(cfg.Telegram.BotToken, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Telegram client", zap.Error(err))
	}

	registry := incidents.NewRegistry()
	admins := moderation.NewAdminSet(client, cfg.Telegram.Admins, cfg.Telegram.Chats, logger)
	logger.Info("Admin set initialized", zap.Int64s("admins", admins.IDs()))

	cls := classifier.Default(cfg.Telegram.Chats)
	escalator := moderation.NewEscalator(client, registry, cfg.Telegram.AdminChannelID, logger)
	resolver := moderation.NewResolver(client, registry, admins, decisionRepo, logger)
	actions := moderation.NewActions(client, cfg.Telegram.AdminChannelID, logger)

	bot := telegram_bot.NewBot(client, cls, escalator, resolver, actions, logger)

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run the bot in a goroutine
	go func() {
		if err := bot.Start(ctx); err != nil {
			logger.Error("Telegram bot failed", zap.Error(err))
		}
	}()

	// Initialize and run the admin API server
	srv := server.NewServer(registry, decisionRepo, cfg.Server.JWTSecret, logrus.New(), logger)
	go srv.Run(cfg.Server.Port)

	<-ctx.Done()
	logger.Info("Application stopped.")
}
