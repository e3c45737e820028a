package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/efcquiz/internal/domain"
)

// ListResult is one page of decks and the total number matching the filter.
type ListResult struct {
	Decks []domain.StoredDeck
	Total int
}

// List returns deck summaries ordered by name. A zero limit uses the
// configured default.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.ListLimit
	}

	decks, total, err := s.decks.List(ctx, domain.DeckFilter{
		NamePrefix: strings.TrimSpace(input.NamePrefix),
		Limit:      limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	return &ListResult{Decks: decks, Total: total}, nil
}
