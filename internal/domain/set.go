package domain

import "fmt"

// Set is a collection of Flashcards and McCards together with the policy for
// how each axis is recalled and how answers are graded.
//
// Questions derived from a Set refer to cards by index, so a Set must not be
// structurally modified (cards inserted or removed) while questions built
// from it are in use.
type Set struct {
	Flashcards []Flashcard
	MCCards    []McCard

	// RecallFront controls questions that show the back and ask for the front.
	RecallFront RecallType
	// RecallBack controls questions that show the front and ask for the back.
	RecallBack RecallType
	// RecallMC controls multiple choice card questions.
	RecallMC RecallType

	MatchingRules MatchingRules
}

// NewSet returns an empty set with every axis recalled by multiple choice and
// DefaultMatchingRules.
func NewSet() *Set {
	return &Set{
		RecallFront:   RecallMC,
		RecallBack:    RecallMC,
		RecallMC:      RecallMC,
		MatchingRules: DefaultMatchingRules,
	}
}

// RecallFor returns the recall policy for questions that test side s of a
// flashcard.
func (s *Set) RecallFor(side Side) RecallType {
	if side == SideFront {
		return s.RecallFront
	}
	return s.RecallBack
}

// TermCount returns the number of cards of both kinds.
func (s *Set) TermCount() int {
	return len(s.Flashcards) + len(s.MCCards)
}

// Equal reports whether both sets hold the same cards and settings.
func (s *Set) Equal(o *Set) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.RecallFront != o.RecallFront || s.RecallBack != o.RecallBack || s.RecallMC != o.RecallMC ||
		s.MatchingRules != o.MatchingRules ||
		len(s.Flashcards) != len(o.Flashcards) || len(s.MCCards) != len(o.MCCards) {
		return false
	}
	for i := range s.Flashcards {
		if !s.Flashcards[i].Equal(o.Flashcards[i]) {
			return false
		}
	}
	for i := range s.MCCards {
		if !s.MCCards[i].Equal(o.MCCards[i]) {
			return false
		}
	}
	return true
}

// Validate reports cards that can never produce a usable question and recall
// settings outside the known values. Question generation does not require a
// valid set; empty sides simply yield no prompt.
func (s *Set) Validate() error {
	var errs []FieldError

	recalls := []struct {
		field  string
		recall RecallType
	}{
		{"recall_front", s.RecallFront},
		{"recall_back", s.RecallBack},
		{"recall_mc", s.RecallMC},
	}
	for _, r := range recalls {
		if !r.recall.IsValid() {
			errs = append(errs, FieldError{Field: r.field, Message: fmt.Sprintf("unknown recall type %q", r.recall)})
		}
	}

	for i := range s.Flashcards {
		if s.Flashcards[i].Front.IsEmpty() {
			errs = append(errs, FieldError{Field: fmt.Sprintf("flashcards[%d].front", i), Message: "no text"})
		}
		if s.Flashcards[i].Back.IsEmpty() {
			errs = append(errs, FieldError{Field: fmt.Sprintf("flashcards[%d].back", i), Message: "no text"})
		}
	}

	for i := range s.MCCards {
		c := &s.MCCards[i]
		if c.Question.IsEmpty() {
			errs = append(errs, FieldError{Field: fmt.Sprintf("mc_cards[%d].question", i), Message: "no text"})
		}
		if c.Answer.IsEmpty() {
			errs = append(errs, FieldError{Field: fmt.Sprintf("mc_cards[%d].answer", i), Message: "no text"})
		}
		if c.Decoys.Len() == 0 {
			errs = append(errs, FieldError{Field: fmt.Sprintf("mc_cards[%d].decoys", i), Message: "no decoys"})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
