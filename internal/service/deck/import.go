package deck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/heartmarshall/efcquiz/internal/adapter/efc"
	"github.com/heartmarshall/efcquiz/internal/domain"
)

// Import parses an EFC document and stores it under input.Name. The
// content is stored re-encoded, so exports are normalized.
func (s *Service) Import(ctx context.Context, input ImportInput) (*domain.Deck, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.NormalizeDeckName(input.Name)
	if utf8.RuneCountInString(name) > s.cfg.MaxNameLength {
		return nil, domain.NewValidationError("name", fmt.Sprintf("max %d characters", s.cfg.MaxNameLength))
	}

	raw, err := io.ReadAll(io.LimitReader(input.Content, MaxContentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read deck %q: %w", name, err)
	}
	if len(raw) > MaxContentBytes {
		return nil, domain.NewValidationError("content", fmt.Sprintf("max %d bytes", MaxContentBytes))
	}

	set, _, err := efc.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse deck %q: %w", name, err)
	}
	if input.Strict {
		if err := set.Validate(); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := efc.Encode(&buf, set); err != nil {
		return nil, fmt.Errorf("encode deck %q: %w", name, err)
	}
	content := buf.String()

	var (
		stored   domain.StoredDeck
		replaced bool
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.decks.GetByName(ctx, name)
		switch {
		case err == nil:
			if !input.Replace {
				return fmt.Errorf("deck %q: %w", name, domain.ErrAlreadyExists)
			}
			replaced = true
			stored, err = s.decks.UpdateContent(ctx, existing.ID, content, len(set.Flashcards), len(set.MCCards))
			if err != nil {
				return fmt.Errorf("update deck: %w", err)
			}
			return nil
		case errors.Is(err, domain.ErrNotFound):
			stored, err = s.decks.Create(ctx, domain.StoredDeck{
				Name:           name,
				Content:        content,
				FlashcardCount: len(set.Flashcards),
				MCCount:        len(set.MCCards),
			})
			if err != nil {
				return fmt.Errorf("create deck: %w", err)
			}
			return nil
		default:
			return fmt.Errorf("get deck by name: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "deck imported", append(logAttrs(ctx),
		slog.String("deck_id", stored.ID.String()),
		slog.String("name", stored.Name),
		slog.Int("flashcards", stored.FlashcardCount),
		slog.Int("mc_cards", stored.MCCount),
		slog.Bool("replaced", replaced),
	)...)

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
