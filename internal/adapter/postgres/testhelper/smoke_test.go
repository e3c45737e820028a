package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	d := SeedDeck(t, pool, UniqueName("smoke"))

	var name string
	err := pool.QueryRow(
		context.Background(),
		`SELECT name FROM decks WHERE id = $1`,
		d.ID,
	).Scan(&name)
	if err != nil {
		t.Fatalf("expected deck in DB, got error: %v", err)
	}

	if name != d.Name {
		t.Fatalf("expected name %q, got %q", d.Name, name)
	}
}
