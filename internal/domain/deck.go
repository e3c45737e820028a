package domain

import (
	"time"

	"github.com/google/uuid"
)

// StoredDeck is a deck as kept in the deck store. Content holds the set in
// EFC text form; it is empty in list results.
type StoredDeck struct {
	ID             uuid.UUID
	Name           string
	Content        string
	FlashcardCount int
	MCCount        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Deck is a stored deck with its content parsed into a Set.
type Deck struct {
	ID             uuid.UUID
	Name           string
	Set            *Set
	FlashcardCount int
	MCCount        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DeckFilter contains filtering/pagination parameters for deck listings.
type DeckFilter struct {
	// NamePrefix matches deck names case-insensitively. Empty means all.
	NamePrefix string
	Limit      int
	Offset     int
}
