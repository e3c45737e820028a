package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/heartmarshall/efcquiz/internal/config"
	"github.com/heartmarshall/efcquiz/pkg/ctxutil"
)

func TestNewRand_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	a, seedA := NewRand(42)
	b, seedB := NewRand(42)
	if seedA != 42 || seedB != 42 {
		t.Fatalf("seeds = %d, %d, want 42", seedA, seedB)
	}
	for i := range 20 {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}

func TestNewRand_ZeroSeedPicksOne(t *testing.T) {
	t.Parallel()

	_, seed := NewRand(0)
	if seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestNewRunContext(t *testing.T) {
	t.Parallel()

	ctx, logger := NewRunContext(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)), "quiz")
	if _, ok := ctxutil.RunIDFromCtx(ctx); !ok {
		t.Error("run ID should be set")
	}
	if got := ctxutil.CommandFromCtx(ctx); got != "quiz" {
		t.Errorf("command = %q, want quiz", got)
	}
	if logger == nil {
		t.Fatal("logger should not be nil")
	}
}

func TestQuizConditions(t *testing.T) {
	t.Parallel()

	got := QuizConditions(config.QuizConfig{IncludeFront: true, IncludeMC: true})
	if !got.IncludeCardFront || got.IncludeCardBack || !got.IncludeMC {
		t.Errorf("conditions = %+v", got)
	}
}

func TestOpenDecks_RequiresDSN(t *testing.T) {
	t.Parallel()

	_, err := OpenDecks(context.Background(), &config.Config{}, slog.Default())
	if !errors.Is(err, config.ErrNoDatabase) {
		t.Fatalf("expected ErrNoDatabase, got: %v", err)
	}
}
