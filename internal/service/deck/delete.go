package deck

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes a deck.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.decks.Delete(ctx, input.DeckID); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck deleted", append(logAttrs(ctx),
		slog.String("deck_id", input.DeckID.String()),
	)...)
	return nil
}
