package quiz

import (
	"fmt"

	"github.com/heartmarshall/efcquiz/internal/domain"
)

// Kind distinguishes flashcard questions from multiple choice card questions.
type Kind string

const (
	KindFlashcard Kind = "FLASHCARD"
	KindMC        Kind = "MC"
)

func (k Kind) String() string { return string(k) }

// Question is one thing that can be asked of the player.
//
// It is not a card: a flashcard can produce two questions (one per side)
// while a card may produce none under some Conditions. A Question names its
// card by index into the owning Set, which must outlive it unchanged.
type Question struct {
	set   *domain.Set
	kind  Kind
	index int
	// side is the flashcard side the player must recall. Unused for KindMC.
	side domain.Side
}

func flashcardQuestion(set *domain.Set, index int, side domain.Side) Question {
	return Question{set: set, kind: KindFlashcard, index: index, side: side}
}

func mcQuestion(set *domain.Set, index int) Question {
	return Question{set: set, kind: KindMC, index: index}
}

// Equal reports whether q and o come from the same Set and ask the same thing.
func (q Question) Equal(o Question) bool {
	return q.set == o.set && q.kind == o.kind && q.index == o.index && q.side == o.side
}

// Kind returns the card kind behind the question.
func (q Question) Kind() Kind { return q.kind }

// Index returns the position of the card in Set.Flashcards or Set.MCCards.
func (q Question) Index() int { return q.index }

// Side returns the flashcard side the player must recall. It is empty for
// multiple choice questions.
func (q Question) Side() domain.Side { return q.side }

// Set returns the owning Set.
func (q Question) Set() *domain.Set { return q.set }

// Flashcard returns the card behind a flashcard question.
func (q Question) Flashcard() (*domain.Flashcard, bool) {
	if q.kind != KindFlashcard {
		return nil, false
	}
	return &q.set.Flashcards[q.index], true
}

// MCCard returns the card behind a multiple choice question.
func (q Question) MCCard() (*domain.McCard, bool) {
	if q.kind != KindMC {
		return nil, false
	}
	return &q.set.MCCards[q.index], true
}

// Recall returns the Set's recall policy for this question's axis, which a
// presentation layer uses to choose between a list and a typed answer.
func (q Question) Recall() domain.RecallType {
	if q.kind == KindMC {
		return q.set.RecallMC
	}
	return q.set.RecallFor(q.side)
}

// Prompt returns the text to show the player.
//
// For flashcards this is a variant of the side the player is not asked to
// recall; for multiple choice cards it is a variant of the question. It
// reports false when that side has no text.
func (q Question) Prompt(rng domain.Rand) (string, bool) {
	if q.kind == KindMC {
		return q.set.MCCards[q.index].Question.AnyText(rng)
	}
	card := &q.set.Flashcards[q.index]
	return card.Side(q.side.Opposite()).AnyText(rng)
}

// IsCorrectAnswer reports whether answer is accepted. A question may have
// several correct answers: any stored variant that matches under the Set's
// matching rules.
func (q Question) IsCorrectAnswer(answer string) bool {
	return q.answerSide().MatchesText(q.set.MatchingRules, answer)
}

// Answers returns every stored variant of the correct answer.
func (q Question) Answers() []string {
	return q.answerSide().Texts()
}

func (q Question) answerSide() *domain.CardSide {
	if q.kind == KindMC {
		return &q.set.MCCards[q.index].Answer
	}
	return q.set.Flashcards[q.index].Side(q.side)
}

func (q Question) String() string {
	if q.kind == KindMC {
		return fmt.Sprintf("mc[%d]", q.index)
	}
	return fmt.Sprintf("flashcard[%d]/%s", q.index, q.side)
}
