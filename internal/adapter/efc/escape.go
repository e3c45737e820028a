package efc

import "strings"

// unescape decodes card text: `\\` is a backslash, `\n` a newline and `\ ` a
// space. Other escapes are dropped; a trailing lone backslash is kept.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '\\' {
			b.WriteRune(rs[i])
			continue
		}
		if i+1 == len(rs) {
			b.WriteRune('\\')
			break
		}
		i++
		switch rs[i] {
		case '\\':
			b.WriteRune('\\')
		case 'n':
			b.WriteRune('\n')
		case ' ':
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// escape is the inverse of unescape for text written after "X: ". A leading
// space is escaped because the loader strips leading whitespace.
func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == ' ' && i == 0:
			b.WriteString(`\ `)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
