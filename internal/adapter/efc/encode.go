package efc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/heartmarshall/efcquiz/internal/domain"
)

// Save writes set to the file at path, replacing any existing file.
func Save(path string, set *domain.Set) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create set file: %w", err)
	}
	if err := Encode(f, set); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Encode writes set to w in a form Decode reads back into an equal set.
// Card texts lose leading tabs and trailing carriage returns; no escape
// exists for them. Texts left empty by that are dropped, and cards without
// any remaining text are skipped.
func Encode(w io.Writer, set *domain.Set) error {
	if set == nil {
		return fmt.Errorf("encode set: %w", domain.ErrValidation)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s%s\n", versionPrefix, FormatVersion)
	fmt.Fprintf(bw, "%d%s\n", writtenTerms(set), termsSuffix)

	checkCaps := !set.MatchingRules.IgnoreCaps
	for _, s := range []struct {
		header string
		recall domain.RecallType
		field  string
	}{
		{"@[card front]", set.RecallFront, "recall_front"},
		{"@[card back]", set.RecallBack, "recall_back"},
		{"@[mc]", set.RecallMC, "recall_mc"},
	} {
		name, ok := formatRecall(s.recall)
		if !ok {
			return fmt.Errorf("encode set: %w", domain.NewValidationError(s.field, "invalid recall type "+string(s.recall)))
		}
		fmt.Fprintf(bw, "\n%s\nrecall: %s\ncheck caps: %t\n", s.header, name, checkCaps)
	}

	for _, card := range set.Flashcards {
		if !hasText(card) {
			continue
		}
		bw.WriteString("\n[card]\n")
		writeTexts(bw, "F", card.Front.Texts())
		writeTexts(bw, "B", card.Back.Texts())
	}

	for _, card := range set.MCCards {
		if !hasMCText(card) {
			continue
		}
		bw.WriteString("\n[mc]\n")
		writeTexts(bw, "Q", card.Question.Texts())
		writeTexts(bw, "A", card.Answer.Texts())
		writeTexts(bw, "D", card.Decoys.Texts())
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write set: %w", err)
	}
	return nil
}

func writeTexts(w *bufio.Writer, key string, texts []string) {
	for _, t := range texts {
		t = writable(t)
		if t == "" {
			continue
		}
		w.WriteString(key)
		w.WriteString(": ")
		w.WriteString(escape(t))
		w.WriteByte('\n')
	}
}

// writable strips what the decoder cannot read back. An empty value would
// end the block, so callers skip texts this reduces to "".
func writable(t string) string {
	return strings.TrimRight(strings.TrimLeft(t, "\t\v\f"), "\r")
}

func anyWritable(texts []string) bool {
	return slices.ContainsFunc(texts, func(t string) bool { return writable(t) != "" })
}

func hasText(c domain.Flashcard) bool {
	return anyWritable(c.Front.Texts()) || anyWritable(c.Back.Texts())
}

func hasMCText(c domain.McCard) bool {
	return anyWritable(c.Question.Texts()) || anyWritable(c.Answer.Texts()) || anyWritable(c.Decoys.Texts())
}

func writtenTerms(set *domain.Set) int {
	n := 0
	for _, c := range set.Flashcards {
		if hasText(c) {
			n++
		}
	}
	for _, c := range set.MCCards {
		if hasMCText(c) {
			n++
		}
	}
	return n
}
