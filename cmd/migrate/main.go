// Command migrate applies the embedded schema migrations to the deck store.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/efcquiz/internal/app"
	"github.com/heartmarshall/efcquiz/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx, logger = app.NewRunContext(ctx, logger, "migrate")

	decks, err := app.OpenDecks(ctx, cfg, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer decks.Close()

	applied, err := decks.Migrate(ctx, logger)
	if err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrate completed",
		slog.Int("applied", applied),
		slog.String("version", app.BuildVersion()),
	)
}
