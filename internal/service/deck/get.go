package deck

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/efcquiz/internal/domain"
)

// Get loads a deck by ID and parses its content.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	stored, err := s.decks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}
	return toDeck(stored)
}

// Resolve loads a deck by ID if ref parses as a UUID, otherwise by name.
func (s *Service) Resolve(ctx context.Context, ref string) (*domain.Deck, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.NewValidationError("deck", "required")
	}
	if id, err := uuid.Parse(ref); err == nil {
		return s.Get(ctx, id)
	}

	stored, err := s.decks.GetByName(ctx, domain.NormalizeDeckName(ref))
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}
	return toDeck(stored)
}

// Export writes the stored EFC text of a deck to w.
func (s *Service) Export(ctx context.Context, id uuid.UUID, w io.Writer) error {
	stored, err := s.decks.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get deck: %w", err)
	}
	if _, err := io.WriteString(w, stored.Content); err != nil {
		return fmt.Errorf("write deck %s: %w", id, err)
	}
	return nil
}
