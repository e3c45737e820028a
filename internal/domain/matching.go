package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// MatchingRules decide whether a typed answer matches stored card text.
//
// Leading and trailing whitespace is always ignored. With IgnoreCaps the
// comparison uses full Unicode case folding, so "STRASSE" matches "straße".
// The zero value is case-sensitive.
type MatchingRules struct {
	IgnoreCaps bool
}

// DefaultMatchingRules are applied by NewSet and by the EFC loader when a file
// does not set "check caps".
var DefaultMatchingRules = MatchingRules{IgnoreCaps: true}

// Match reports whether input matches the stored text.
func (r MatchingRules) Match(stored, input string) bool {
	stored = strings.TrimSpace(stored)
	input = strings.TrimSpace(input)
	if !r.IgnoreCaps {
		return stored == input
	}
	if stored == input {
		return true
	}
	// A Caser keeps state between calls, so each comparison gets its own.
	fold := cases.Fold()
	return fold.String(stored) == fold.String(input)
}
