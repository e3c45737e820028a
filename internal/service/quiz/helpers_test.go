package quiz

import (
	"math/rand/v2"
	"testing"

	"github.com/heartmarshall/efcquiz/internal/domain"
)

// exampleSet returns six flashcards a/0 .. f/5 and four multiple choice cards
// with three decoys each, every axis recalled by multiple choice.
func exampleSet() *domain.Set {
	set := domain.NewSet()
	for i, front := range []string{"a", "b", "c", "d", "e", "f"} {
		set.Flashcards = append(set.Flashcards, domain.NewFlashcard(front, string(rune('0'+i))))
	}
	for i := range 4 {
		p := string(rune('0' + i))
		set.MCCards = append(set.MCCards, domain.NewMcCard(
			p+"mc", p+"answer", p+"decoy0", p+"decoy1", p+"decoy2",
		))
	}
	return set
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 1024))
}

// scriptedRand replays fixed values so tests can pin every random choice.
type scriptedRand struct {
	t      *testing.T
	values []int
}

func script(t *testing.T, values ...int) *scriptedRand {
	t.Helper()
	return &scriptedRand{t: t, values: values}
}

func (r *scriptedRand) IntN(n int) int {
	r.t.Helper()
	if len(r.values) == 0 {
		r.t.Fatalf("scriptedRand: exhausted, IntN(%d) called", n)
	}
	v := r.values[0]
	r.values = r.values[1:]
	if v < 0 || v >= n {
		r.t.Fatalf("scriptedRand: value %d out of range [0, %d)", v, n)
	}
	return v
}

func (r *scriptedRand) assertDrained() {
	r.t.Helper()
	if len(r.values) != 0 {
		r.t.Errorf("scriptedRand: %d values left unused: %v", len(r.values), r.values)
	}
}

func possibleConditions() []Conditions {
	return []Conditions{
		IncludeNone,
		{IncludeCardBack: true},
		{IncludeCardFront: true},
		{IncludeMC: true},
		{IncludeCardFront: true, IncludeMC: true},
		{IncludeCardBack: true, IncludeMC: true},
		{IncludeCardBack: true, IncludeCardFront: true},
		IncludeAll,
	}
}
