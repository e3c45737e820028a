package quiz

import (
	"iter"

	"github.com/heartmarshall/efcquiz/internal/domain"
)

// span is a half-open range of card indices still to be visited.
type span struct {
	next, end int
}

func (s span) len() int { return s.end - s.next }

func enabledSpan(include bool, recall domain.RecallType, n int) span {
	if include && recall.Enabled() {
		return span{end: n}
	}
	return span{}
}

// Questions enumerates every question a Set can produce under some
// Conditions: all back-recall flashcard questions, then all front-recall
// flashcard questions, then all multiple choice questions, each group in
// card order.
//
// The order is deterministic for a given Set and Conditions. Next, ForEach
// and Fold consume the sequence; Clone and All leave it untouched.
type Questions struct {
	set   *domain.Set
	back  span
	front span
	mc    span
}

// NewQuestions returns the questions of set selected by cond.
func NewQuestions(set *domain.Set, cond Conditions) *Questions {
	return &Questions{
		set:   set,
		back:  enabledSpan(cond.IncludeCardBack, set.RecallBack, len(set.Flashcards)),
		front: enabledSpan(cond.IncludeCardFront, set.RecallFront, len(set.Flashcards)),
		mc:    enabledSpan(cond.IncludeMC, set.RecallMC, len(set.MCCards)),
	}
}

// Len returns the exact number of questions not yet consumed.
func (qs *Questions) Len() int {
	return qs.back.len() + qs.front.len() + qs.mc.len()
}

// Next returns the next question, or false once the sequence is exhausted.
// An exhausted sequence stays exhausted.
func (qs *Questions) Next() (Question, bool) {
	switch {
	case qs.back.len() > 0:
		i := qs.back.next
		qs.back.next++
		return flashcardQuestion(qs.set, i, domain.SideBack), true
	case qs.front.len() > 0:
		i := qs.front.next
		qs.front.next++
		return flashcardQuestion(qs.set, i, domain.SideFront), true
	case qs.mc.len() > 0:
		i := qs.mc.next
		qs.mc.next++
		return mcQuestion(qs.set, i), true
	}
	return Question{}, false
}

// ForEach calls fn for every remaining question, consuming them.
func (qs *Questions) ForEach(fn func(Question)) {
	for i := qs.back.next; i < qs.back.end; i++ {
		fn(flashcardQuestion(qs.set, i, domain.SideBack))
	}
	qs.back.next = qs.back.end

	for i := qs.front.next; i < qs.front.end; i++ {
		fn(flashcardQuestion(qs.set, i, domain.SideFront))
	}
	qs.front.next = qs.front.end

	for i := qs.mc.next; i < qs.mc.end; i++ {
		fn(mcQuestion(qs.set, i))
	}
	qs.mc.next = qs.mc.end
}

// Fold combines every remaining question into an accumulator, consuming them.
func Fold[B any](qs *Questions, init B, fn func(B, Question) B) B {
	acc := init
	qs.ForEach(func(q Question) {
		acc = fn(acc, q)
	})
	return acc
}

// Clone returns an independent copy positioned at the same question.
func (qs *Questions) Clone() *Questions {
	c := *qs
	return &c
}

// All iterates over the remaining questions without consuming them.
func (qs *Questions) All() iter.Seq[Question] {
	c := qs.Clone()
	return func(yield func(Question) bool) {
		it := c.Clone()
		for {
			q, ok := it.Next()
			if !ok || !yield(q) {
				return
			}
		}
	}
}

// Collect consumes the remaining questions into a slice.
func (qs *Questions) Collect() []Question {
	out := make([]Question, 0, qs.Len())
	qs.ForEach(func(q Question) {
		out = append(out, q)
	})
	return out
}
