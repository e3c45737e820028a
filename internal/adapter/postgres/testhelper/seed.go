package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/efcquiz/internal/domain"
)

// UniqueName returns prefix followed by a short unique suffix, for deck
// names that must not collide across tests sharing the container.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedDeck inserts a deck with a single flashcard and returns it.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, name string) domain.StoredDeck {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.StoredDeck{
		ID:             uuid.New(),
		Name:           name,
		Content:        "[card]\nF: front\nB: back\n",
		FlashcardCount: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO decks (id, name, content, flashcard_count, mc_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.Name, d.Content, d.FlashcardCount, d.MCCount, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck insert: %v", err)
	}

	return d
}
