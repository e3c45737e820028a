// Package efc reads and writes the EFC3 text format for flashcard sets.
//
// A file optionally starts with "EFC3 format <version>" and "<n> terms".
// The body is a list of blocks introduced by a header line:
//
//	@[card front]   recall settings for recalling flashcard fronts
//	@[card back]    recall settings for recalling flashcard backs
//	@[mc]           recall settings for multiple choice cards
//	[card]          a flashcard, with F: (front) and B: (back) lines
//	[mc]            a multiple choice card, with Q:, A: and D: (decoy) lines
//
// A block holds the "key: value" lines that follow its header and ends at
// the first line of any other shape, including a key with an empty value.
// Lines after that up to the next header are ignored. Settings blocks accept
// "recall: never | multiple choice | text" and "check caps: true | false".
// Card text supports the escapes `\\`, `\n` and `\ `.
package efc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/heartmarshall/efcquiz/internal/domain"
)

const (
	// FormatVersion is written by Encode.
	FormatVersion = "1.0.0"

	versionPrefix = "EFC3 format "
	termsSuffix   = " terms"
	maxLineSize   = 1 << 20
)

// Header holds the optional first two lines of a file.
type Header struct {
	// Version is empty when the file has no version line.
	Version string
	// Terms is the card count hint; valid only if HasTerms.
	Terms    int
	HasTerms bool
}

// Load reads a set from the file at path.
func Load(path string) (*domain.Set, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, fmt.Errorf("open set file: %w", err)
	}
	defer f.Close()

	set, header, err := Decode(f)
	if err != nil {
		return nil, Header{}, fmt.Errorf("load %s: %w", path, err)
	}
	return set, header, nil
}

// Decode reads a set from r. Settings a file does not mention keep the
// defaults of domain.NewSet.
func Decode(r io.Reader) (*domain.Set, Header, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, Header{}, err
	}

	d := &decoder{lines: lines, set: domain.NewSet()}
	header, err := d.header()
	if err != nil {
		return nil, Header{}, err
	}
	if err := d.body(); err != nil {
		return nil, Header{}, err
	}
	return d.set, header, nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read set: %w", err)
	}
	return lines, nil
}

type decoder struct {
	lines []string
	pos   int
	set   *domain.Set
}

// lineNo returns the 1-based number of the line at index i.
func lineNo(i int) int { return i + 1 }

func (d *decoder) header() (Header, error) {
	var h Header

	if d.pos < len(d.lines) && strings.HasPrefix(d.lines[d.pos], versionPrefix) {
		v := strings.TrimSpace(strings.TrimPrefix(d.lines[d.pos], versionPrefix))
		if !isFullVersion(v) {
			return h, parseErrorf(lineNo(d.pos), ErrSyntax, "invalid format version %q", v)
		}
		if semver.Compare(semver.Major("v"+v), semver.Major("v"+FormatVersion)) > 0 {
			return h, parseErrorf(lineNo(d.pos), ErrUnsupportedVersion, "format version %s is newer than %s", v, FormatVersion)
		}
		h.Version = v
		d.pos++
	}

	if d.pos < len(d.lines) {
		if n, ok := termsHint(d.lines[d.pos]); ok {
			h.Terms, h.HasTerms = n, true
			d.pos++
		}
	}
	return h, nil
}

// isFullVersion reports whether v is MAJOR.MINOR.PATCH with optional
// pre-release and build parts. semver alone also accepts "1" and "1.2".
func isFullVersion(v string) bool {
	sv := "v" + v
	if !semver.IsValid(sv) {
		return false
	}
	core, _, _ := strings.Cut(sv, "+")
	return semver.Canonical(sv) == core
}

func termsHint(line string) (int, bool) {
	digits, ok := strings.CutSuffix(line, termsSuffix)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func (d *decoder) body() error {
	for d.pos < len(d.lines) {
		head := strings.TrimSpace(d.lines[d.pos])
		d.pos++

		var err error
		switch head {
		case "@[card front]":
			d.set.RecallFront, err = d.settings(d.set.RecallFront)
		case "@[card back]":
			d.set.RecallBack, err = d.settings(d.set.RecallBack)
		case "@[mc]":
			d.set.RecallMC, err = d.settings(d.set.RecallMC)
		case "[card]":
			d.set.Flashcards = append(d.set.Flashcards, d.flashcard())
		case "[mc]":
			d.set.MCCards = append(d.set.MCCards, d.mcCard())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// property consumes the next line if it has the shape "key: value" with a
// non-blank value. Keys are trimmed; values lose their leading whitespace
// only. A line with an empty value is left unconsumed and ends the block.
func (d *decoder) property() (key, value string, line int, ok bool) {
	if d.pos >= len(d.lines) {
		return "", "", 0, false
	}
	raw := d.lines[d.pos]
	k, v, found := strings.Cut(raw, ":")
	if !found || k == "" {
		return "", "", 0, false
	}
	v = strings.TrimLeft(v, " \t\v\f")
	if v == "" {
		return "", "", 0, false
	}
	line = lineNo(d.pos)
	d.pos++
	return strings.TrimSpace(k), v, line, true
}

func (d *decoder) settings(recall domain.RecallType) (domain.RecallType, error) {
	for {
		key, value, line, ok := d.property()
		if !ok {
			return recall, nil
		}
		value = strings.TrimSpace(value)

		switch key {
		case "recall":
			r, ok := parseRecall(value)
			if !ok {
				return recall, parseErrorf(line, ErrInvalidValue, "recall: got %q, expected { never | multiple choice | text }", value)
			}
			recall = r
		case "check caps":
			switch value {
			case "true":
				d.set.MatchingRules.IgnoreCaps = false
			case "false":
				d.set.MatchingRules.IgnoreCaps = true
			default:
				return recall, parseErrorf(line, ErrInvalidValue, "check caps: got %q, expected { true | false }", value)
			}
		}
	}
}

func (d *decoder) flashcard() domain.Flashcard {
	var card domain.Flashcard
	for {
		key, value, _, ok := d.property()
		if !ok {
			return card
		}
		switch key {
		case "F":
			card.Front.PushText(unescape(value))
		case "B":
			card.Back.PushText(unescape(value))
		}
	}
}

func (d *decoder) mcCard() domain.McCard {
	var card domain.McCard
	for {
		key, value, _, ok := d.property()
		if !ok {
			return card
		}
		switch key {
		case "Q":
			card.Question.PushText(unescape(value))
		case "A":
			card.Answer.PushText(unescape(value))
		case "D":
			card.Decoys.PushText(unescape(value))
		}
	}
}

func parseRecall(s string) (domain.RecallType, bool) {
	switch s {
	case "never":
		return domain.RecallNone, true
	case "multiple choice":
		return domain.RecallMC, true
	case "text":
		return domain.RecallText, true
	}
	return "", false
}

func formatRecall(r domain.RecallType) (string, bool) {
	switch r {
	case domain.RecallNone:
		return "never", true
	case domain.RecallMC:
		return "multiple choice", true
	case domain.RecallText:
		return "text", true
	}
	return "", false
}
