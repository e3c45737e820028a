// Package deck manages named sets kept in the deck store. Content is
// stored in EFC text form and parsed back into a domain.Set on load.
package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/efcquiz/internal/adapter/efc"
	"github.com/heartmarshall/efcquiz/internal/config"
	"github.com/heartmarshall/efcquiz/internal/domain"
	"github.com/heartmarshall/efcquiz/pkg/ctxutil"
)

// MaxContentBytes bounds the size of an imported deck.
const MaxContentBytes = 4 << 20

type deckRepo interface {
	Create(ctx context.Context, d domain.StoredDeck) (domain.StoredDeck, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.StoredDeck, error)
	GetByName(ctx context.Context, name string) (domain.StoredDeck, error)
	List(ctx context.Context, filter domain.DeckFilter) ([]domain.StoredDeck, int, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string, flashcards, mc int) (domain.StoredDeck, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides deck import, export, and management operations.
type Service struct {
	decks deckRepo
	tx    txManager
	log   *slog.Logger
	cfg   config.DeckConfig
}

// NewService creates a new deck service.
func NewService(
	log *slog.Logger,
	decks deckRepo,
	tx txManager,
	cfg config.DeckConfig,
) *Service {
	return &Service{
		decks: decks,
		tx:    tx,
		log:   log.With("service", "deck"),
		cfg:   cfg,
	}
}

// toDeck parses stored content into a Deck.
func toDeck(stored domain.StoredDeck) (*domain.Deck, error) {
	set, _, err := efc.Decode(strings.NewReader(stored.Content))
	if err != nil {
		return nil, fmt.Errorf("decode deck %s: %w", stored.ID, err)
	}
	return &domain.Deck{
		ID:             stored.ID,
		Name:           stored.Name,
		Set:            set,
		FlashcardCount: stored.FlashcardCount,
		MCCount:        stored.MCCount,
		CreatedAt:      stored.CreatedAt,
		UpdatedAt:      stored.UpdatedAt,
	}, nil
}

// logAttrs returns the run attributes carried by ctx.
func logAttrs(ctx context.Context) []any {
	var attrs []any
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("run_id", id.String()))
	}
	if cmd := ctxutil.CommandFromCtx(ctx); cmd != "" {
		attrs = append(attrs, slog.String("command", cmd))
	}
	return attrs
}
