// Package app holds the wiring shared by the commands: logging, the
// random source, the run context, and the deck store.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/efcquiz/internal/adapter/postgres"
	deckrepo "github.com/heartmarshall/efcquiz/internal/adapter/postgres/deck"
	"github.com/heartmarshall/efcquiz/internal/config"
	"github.com/heartmarshall/efcquiz/internal/service/deck"
	"github.com/heartmarshall/efcquiz/internal/service/quiz"
	"github.com/heartmarshall/efcquiz/pkg/ctxutil"
)

// NewRunContext tags ctx with a fresh run ID and the command name, and
// returns a logger carrying both.
func NewRunContext(ctx context.Context, logger *slog.Logger, command string) (context.Context, *slog.Logger) {
	id := uuid.New()
	ctx = ctxutil.WithRunID(ctx, id)
	ctx = ctxutil.WithCommand(ctx, command)
	return ctx, logger.With(slog.String("run_id", id.String()), slog.String("command", command))
}

// NewRand returns a PCG source seeded with seed. A zero seed picks one from
// the clock; the seed actually used is returned so a run can be replayed.
func NewRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// QuizConditions converts the configured question categories.
func QuizConditions(cfg config.QuizConfig) quiz.Conditions {
	return quiz.Conditions{
		IncludeCardFront: cfg.IncludeFront,
		IncludeCardBack:  cfg.IncludeBack,
		IncludeMC:        cfg.IncludeMC,
	}
}

// Decks is an open connection to the deck store.
type Decks struct {
	Service *deck.Service
	pool    *pgxpool.Pool
}

// OpenDecks connects to the database and builds the deck service.
// The caller must Close the result.
func OpenDecks(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Decks, error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	svc := deck.NewService(logger, deckrepo.New(pool), postgres.NewTxManager(pool), cfg.Deck)
	return &Decks{Service: svc, pool: pool}, nil
}

// Migrate applies pending schema migrations.
func (d *Decks) Migrate(ctx context.Context, logger *slog.Logger) (int, error) {
	return postgres.Migrate(ctx, d.pool, logger)
}

// Close releases the connection pool.
func (d *Decks) Close() {
	d.pool.Close()
}
