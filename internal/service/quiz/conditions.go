package quiz

// Conditions select which question categories a caller wants generated.
// A category is produced only if it is selected here and the Set's recall
// policy for that axis is enabled.
type Conditions struct {
	// IncludeCardFront shows the back of each card and asks for the front.
	IncludeCardFront bool
	// IncludeCardBack shows the front of each card and asks for the back.
	IncludeCardBack bool
	// IncludeMC includes multiple choice cards.
	IncludeMC bool
}

var (
	IncludeAll  = Conditions{IncludeCardFront: true, IncludeCardBack: true, IncludeMC: true}
	IncludeNone = Conditions{}
)
