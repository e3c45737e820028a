package domain

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestCardSide_AnyText_Empty(t *testing.T) {
	t.Parallel()

	var side CardSide
	if text, ok := side.AnyText(newRand(1)); ok {
		t.Fatalf("AnyText on empty side = %q, want absence", text)
	}
}

func TestCardSide_AnyText_CoversAllVariants(t *testing.T) {
	t.Parallel()

	side := NewCardSide("one", "two", "three")
	rng := newRand(2)
	seen := map[string]bool{}
	for range 200 {
		text, ok := side.AnyText(rng)
		if !ok {
			t.Fatal("AnyText returned absence for non-empty side")
		}
		seen[text] = true
	}
	if len(seen) != 3 {
		t.Errorf("AnyText produced %d distinct variants over 200 draws, want 3", len(seen))
	}
}

func TestCardSide_PushRemoveText(t *testing.T) {
	t.Parallel()

	side := NewCardSide("a")
	side.PushText("b")
	side.PushText("c")
	if side.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", side.Len())
	}

	if got := side.RemoveText(1); got != "b" {
		t.Errorf("RemoveText(1) = %q, want b", got)
	}
	if got := side.Texts(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Texts() = %v, want [a c]", got)
	}
	if _, ok := side.Text(5); ok {
		t.Error("Text(5) should report absence")
	}
}

func TestCardSide_CopiesDoNotShareAppends(t *testing.T) {
	t.Parallel()

	orig := NewCardSide("a")
	orig.PushText("b")
	cp := orig
	orig.PushText("c")
	cp.PushText("x")

	if got := orig.Texts(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("orig = %v, want [a b c]", got)
	}
	if got := cp.Texts(); !slices.Equal(got, []string{"a", "b", "x"}) {
		t.Errorf("copy = %v, want [a b x]", got)
	}
}

func TestCardSide_MatchesText(t *testing.T) {
	t.Parallel()

	side := NewCardSide("colour", "color")
	rules := MatchingRules{IgnoreCaps: true}
	if !side.MatchesText(rules, " Color") {
		t.Error("second variant should match")
	}
	if side.MatchesText(rules, "colr") {
		t.Error("misspelling should not match")
	}
	if (CardSide{}).MatchesText(rules, "") {
		t.Error("empty side matches nothing")
	}
}

func TestDecoys_Choose(t *testing.T) {
	t.Parallel()

	decoys := NewDecoys("d0", "d1", "d2", "d3", "d4")

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"none", 0, 0},
		{"negative", -3, 0},
		{"some", 3, 3},
		{"all", 5, 5},
		{"more than stored", 9, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := decoys.Choose(newRand(3), tt.n)
			if len(got) != tt.want {
				t.Fatalf("Choose(%d) returned %d entries, want %d", tt.n, len(got), tt.want)
			}
			seen := map[string]bool{}
			for _, d := range got {
				if seen[d] {
					t.Errorf("Choose returned %q twice", d)
				}
				seen[d] = true
			}
		})
	}

	if got := decoys.Texts(); !slices.Equal(got, []string{"d0", "d1", "d2", "d3", "d4"}) {
		t.Errorf("Choose must not reorder the bag, got %v", got)
	}
}

func TestDecoys_Choose_DuplicateEntriesSampledIndependently(t *testing.T) {
	t.Parallel()

	decoys := NewDecoys("same", "same")
	got := decoys.Choose(newRand(4), 2)
	if !slices.Equal(got, []string{"same", "same"}) {
		t.Errorf("Choose(2) = %v, want both stored entries", got)
	}
}

func TestFlashcard_Side(t *testing.T) {
	t.Parallel()

	card := NewFlashcard("a", "0")
	if got, _ := card.Side(SideFront).Text(0); got != "a" {
		t.Errorf("front = %q, want a", got)
	}
	if got, _ := card.Side(SideBack).Text(0); got != "0" {
		t.Errorf("back = %q, want 0", got)
	}

	card.Side(SideBack).PushText("zero")
	if card.Back.Len() != 2 {
		t.Errorf("Side should return a pointer into the card, back has %d variants", card.Back.Len())
	}
}

func TestSet_RecallFor(t *testing.T) {
	t.Parallel()

	set := NewSet()
	set.RecallFront = RecallText
	set.RecallBack = RecallNone

	if got := set.RecallFor(SideFront); got != RecallText {
		t.Errorf("RecallFor(front) = %v, want TEXT", got)
	}
	if got := set.RecallFor(SideBack); got != RecallNone {
		t.Errorf("RecallFor(back) = %v, want NONE", got)
	}
}

func TestNewSet_Defaults(t *testing.T) {
	t.Parallel()

	set := NewSet()
	if set.RecallFront != RecallMC || set.RecallBack != RecallMC || set.RecallMC != RecallMC {
		t.Errorf("recall defaults = %v/%v/%v, want MC on every axis", set.RecallFront, set.RecallBack, set.RecallMC)
	}
	if set.MatchingRules != DefaultMatchingRules {
		t.Errorf("MatchingRules = %+v, want %+v", set.MatchingRules, DefaultMatchingRules)
	}
}

func TestSet_Validate(t *testing.T) {
	t.Parallel()

	set := NewSet()
	set.Flashcards = []Flashcard{NewFlashcard("a", "0"), {Front: NewCardSide("b")}}
	set.MCCards = []McCard{NewMcCard("q", "a", "d"), NewMcCard("q2", "a2")}

	err := set.Validate()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	if len(vErr.Errors) != 2 {
		t.Fatalf("got %d field errors, want 2: %+v", len(vErr.Errors), vErr.Errors)
	}
	if vErr.Errors[0].Field != "flashcards[1].back" {
		t.Errorf("first field = %q, want flashcards[1].back", vErr.Errors[0].Field)
	}
	if vErr.Errors[1].Field != "mc_cards[1].decoys" {
		t.Errorf("second field = %q, want mc_cards[1].decoys", vErr.Errors[1].Field)
	}

	set.RecallMC = RecallType("SOMETIMES")
	set.Flashcards = set.Flashcards[:1]
	set.MCCards = set.MCCards[:1]
	if err := set.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown recall type should fail validation, got %v", err)
	}
}

func TestSet_Equal(t *testing.T) {
	t.Parallel()

	a := NewSet()
	a.Flashcards = []Flashcard{NewFlashcard("a", "0")}
	b := NewSet()
	b.Flashcards = []Flashcard{NewFlashcard("a", "0")}

	if !a.Equal(b) {
		t.Error("sets with equal content should be Equal")
	}
	b.MatchingRules.IgnoreCaps = false
	if a.Equal(b) {
		t.Error("sets with different matching rules should differ")
	}
	if a.Equal(nil) {
		t.Error("set should not equal nil")
	}
}
