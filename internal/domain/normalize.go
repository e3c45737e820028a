package domain

import (
	"strings"
	"unicode"
)

// NormalizeDeckName prepares a deck name for storage and lookup:
//   - trims leading/trailing whitespace
//   - collapses each run of inner whitespace into one space
//
// Case is preserved; names are compared case-insensitively by the store.
func NormalizeDeckName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
