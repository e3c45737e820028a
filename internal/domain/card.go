package domain

import "slices"

// Rand is the source of randomness consumed by card and question operations.
// *math/rand/v2.Rand satisfies it. Implementations are not expected to be safe
// for concurrent use; give each goroutine its own.
type Rand interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// CardSide is the text on one face of a Flashcard, or the question or answer
// of an McCard.
//
// It holds interchangeable variants: any of them may be shown, and a typed
// answer matching any of them is accepted. A CardSide without variants is
// legal but cannot be shown or answered.
type CardSide struct {
	text []string
}

// NewCardSide returns a CardSide holding the given variants in order.
func NewCardSide(texts ...string) CardSide {
	if len(texts) == 0 {
		return CardSide{}
	}
	return CardSide{text: append([]string(nil), texts...)}
}

// PushText appends a variant.
func (c *CardSide) PushText(text string) {
	// Copies of a CardSide share storage; never append into spare capacity.
	c.text = append(slices.Clip(c.text), text)
}

// RemoveText removes and returns the variant at index, shifting later
// variants left. It panics if index is out of range.
func (c *CardSide) RemoveText(index int) string {
	removed := c.text[index]
	c.text = slices.Delete(slices.Clone(c.text), index, index+1)
	return removed
}

// Text returns the variant at index.
func (c CardSide) Text(index int) (string, bool) {
	if index < 0 || index >= len(c.text) {
		return "", false
	}
	return c.text[index], true
}

// Texts returns a copy of all variants in insertion order.
func (c CardSide) Texts() []string {
	return append([]string(nil), c.text...)
}

// Len returns the number of variants.
func (c CardSide) Len() int { return len(c.text) }

// IsEmpty reports whether the side has no variants.
func (c CardSide) IsEmpty() bool { return len(c.text) == 0 }

// AnyText returns a uniformly chosen variant, or false if there are none.
func (c CardSide) AnyText(rng Rand) (string, bool) {
	if len(c.text) == 0 {
		return "", false
	}
	return c.text[rng.IntN(len(c.text))], true
}

// MatchesText reports whether text matches any variant under rules.
func (c CardSide) MatchesText(rules MatchingRules, text string) bool {
	for _, template := range c.text {
		if rules.Match(template, text) {
			return true
		}
	}
	return false
}

// Equal reports whether both sides hold the same variants in the same order.
func (c CardSide) Equal(o CardSide) bool {
	return slices.Equal(c.text, o.text)
}

// Decoys are the wrong answers offered by a multiple choice card.
// Duplicate texts are allowed; each stored entry is sampled independently.
type Decoys struct {
	text []string
}

// NewDecoys returns a bag holding the given texts.
func NewDecoys(texts ...string) Decoys {
	if len(texts) == 0 {
		return Decoys{}
	}
	return Decoys{text: append([]string(nil), texts...)}
}

// PushText adds a decoy.
func (d *Decoys) PushText(text string) {
	d.text = append(slices.Clip(d.text), text)
}

// Len returns the number of stored decoys.
func (d Decoys) Len() int { return len(d.text) }

// Texts returns a copy of the stored decoys.
func (d Decoys) Texts() []string {
	return append([]string(nil), d.text...)
}

// Choose samples n distinct entries without replacement, in sampled order.
// n is clamped to [0, Len()]. Distinct entries may still carry equal text.
func (d Decoys) Choose(rng Rand, n int) []string {
	n = min(max(n, 0), len(d.text))
	if n == 0 {
		return nil
	}

	// Partial Fisher-Yates over entry indices; the stored bag is left untouched.
	idx := make([]int, len(d.text))
	for i := range idx {
		idx[i] = i
	}
	out := make([]string, n)
	for i := range n {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = d.text[idx[i]]
	}
	return out
}

// Equal reports whether both bags hold the same entries in the same order.
func (d Decoys) Equal(o Decoys) bool {
	return slices.Equal(d.text, o.text)
}

// Flashcard is a two-sided card. The player is shown one side and asked to
// recall the other.
type Flashcard struct {
	Front CardSide
	Back  CardSide
}

// NewFlashcard returns a card with a single variant on each side.
func NewFlashcard(front, back string) Flashcard {
	return Flashcard{Front: NewCardSide(front), Back: NewCardSide(back)}
}

// Side returns the face identified by s. Any value other than SideFront
// selects the back.
func (f *Flashcard) Side(s Side) *CardSide {
	if s == SideFront {
		return &f.Front
	}
	return &f.Back
}

// Equal reports whether both cards carry the same text.
func (f Flashcard) Equal(o Flashcard) bool {
	return f.Front.Equal(o.Front) && f.Back.Equal(o.Back)
}

// McCard is a multiple choice card.
type McCard struct {
	Question CardSide
	Answer   CardSide
	Decoys   Decoys
}

// NewMcCard returns a card with a single question and answer variant.
func NewMcCard(question, answer string, decoys ...string) McCard {
	return McCard{
		Question: NewCardSide(question),
		Answer:   NewCardSide(answer),
		Decoys:   NewDecoys(decoys...),
	}
}

// Equal reports whether both cards carry the same text.
func (m McCard) Equal(o McCard) bool {
	return m.Question.Equal(o.Question) && m.Answer.Equal(o.Answer) && m.Decoys.Equal(o.Decoys)
}
