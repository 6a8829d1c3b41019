package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"

	"github.com/Gust4dev/agendakit-demo/internal/app"
	"github.com/Gust4dev/agendakit-demo/internal/catalog"
	"github.com/Gust4dev/agendakit-demo/internal/config"
	"github.com/Gust4dev/agendakit-demo/internal/controller"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting agendakit bot",
		"environment", cfg.Environment,
		"whatsapp_number", cfg.WhatsAppNumber,
		"handoff_delay", cfg.HandoffDelay)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Sugar().Fatalw("Failed to create bot", "error", err)
	}

	botController := controller.NewBotController(b, cfg, catalog.Default(), logger)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Sugar().Fatalw("Failed to register handlers", "error", err)
	}

	if err := botController.Start(ctx); err != nil {
		logger.Sugar().Fatalw("Bot stopped with error", "error", err)
	}

	logger.Info("Bot stopped")
}
