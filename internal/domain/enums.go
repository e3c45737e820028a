package domain

// Side identifies one face of a Flashcard.
type Side string

const (
	SideFront Side = "FRONT"
	SideBack  Side = "BACK"
)

func (s Side) String() string { return string(s) }

func (s Side) IsValid() bool {
	switch s {
	case SideFront, SideBack:
		return true
	}
	return false
}

// Opposite returns the other face of the card.
func (s Side) Opposite() Side {
	if s == SideFront {
		return SideBack
	}
	return SideFront
}

// RecallType describes how the player must prove they remember one axis of a
// set: front of flashcards, back of flashcards, or multiple choice cards.
type RecallType string

const (
	// RecallNone never generates questions for the axis.
	RecallNone RecallType = "NONE"
	// RecallMC asks the player to pick the answer from a list.
	RecallMC RecallType = "MC"
	// RecallText asks the player to type the answer.
	RecallText RecallType = "TEXT"
)

func (r RecallType) String() string { return string(r) }

func (r RecallType) IsValid() bool {
	switch r {
	case RecallNone, RecallMC, RecallText:
		return true
	}
	return false
}

// Enabled reports whether questions are generated for the axis.
// Unknown values, including the zero value, are treated as disabled.
func (r RecallType) Enabled() bool {
	return r == RecallMC || r == RecallText
}
