package quiz

import (
	"slices"

	"github.com/heartmarshall/efcquiz/internal/domain"
)

// FindDecoyAttempts is how many random flashcards are drawn while looking for
// decoys before giving up with whatever was found.
const FindDecoyAttempts = 24

// McList is a multiple choice answer list: decoys plus exactly one correct
// answer at CorrectIndex.
type McList struct {
	items        []string
	correctIndex int
}

// Len returns the number of options.
func (l McList) Len() int { return len(l.items) }

// At returns option i.
func (l McList) At(i int) string { return l.items[i] }

// Items returns a copy of the options in display order.
func (l McList) Items() []string { return slices.Clone(l.items) }

// CorrectIndex returns the position of the correct answer.
func (l McList) CorrectIndex() int { return l.correctIndex }

// Correct returns the correct answer.
func (l McList) Correct() string { return l.items[l.correctIndex] }

// MCAnswers builds a shuffled list holding the correct answer and up to
// count-1 decoys.
//
// Flashcard decoys are drawn from the tested side of other flashcards in the
// Set, McCard decoys from the card's own decoys. The list may be shorter than
// count when the Set cannot supply enough distinct decoys within
// FindDecoyAttempts draws. It reports false when there is no correct text or
// no decoy at all, since a single option is not a question.
func (q Question) MCAnswers(count int, rng domain.Rand) (McList, bool) {
	if q.kind == KindMC {
		return q.mcCardAnswers(count, rng)
	}
	return q.flashcardAnswers(count, rng)
}

func (q Question) flashcardAnswers(count int, rng domain.Rand) (McList, bool) {
	flashcards := q.set.Flashcards
	answerSide := flashcards[q.index].Side(q.side)

	// Resolve first so a card without text is rejected before any searching.
	correct, ok := answerSide.AnyText(rng)
	if !ok {
		return McList{}, false
	}

	count = min(count, len(flashcards))
	if count < 2 {
		return McList{}, false
	}

	decoys := make([]string, 0, count)
	for range FindDecoyAttempts {
		i := rng.IntN(len(flashcards))
		if i == q.index {
			continue
		}

		text, ok := flashcards[i].Side(q.side).AnyText(rng)
		if !ok {
			continue
		}
		if answerSide.MatchesText(q.set.MatchingRules, text) || slices.Contains(decoys, text) {
			continue
		}

		decoys = append(decoys, text)
		if len(decoys) == count-1 {
			break
		}
	}

	if len(decoys) == 0 {
		return McList{}, false
	}

	correctIndex := rng.IntN(len(decoys) + 1)
	return McList{
		items:        slices.Insert(decoys, correctIndex, correct),
		correctIndex: correctIndex,
	}, true
}

func (q Question) mcCardAnswers(count int, rng domain.Rand) (McList, bool) {
	card := &q.set.MCCards[q.index]

	correct, ok := card.Answer.AnyText(rng)
	if !ok {
		return McList{}, false
	}

	count = min(count, card.Decoys.Len()+1)
	// A card without decoys was probably written by mistake.
	if count < 2 {
		return McList{}, false
	}

	decoys := card.Decoys.Choose(rng, count-1)
	correctIndex := rng.IntN(count)

	items := make([]string, 0, count)
	items = append(items, decoys[:correctIndex]...)
	items = append(items, correct)
	items = append(items, decoys[correctIndex:]...)

	return McList{items: items, correctIndex: correctIndex}, true
}
