package main

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/heartmarshall/efcquiz/internal/domain"
	"github.com/heartmarshall/efcquiz/internal/service/quiz"
)

func init() {
	color.NoColor = true
}

func textSet() *domain.Set {
	set := domain.NewSet()
	set.RecallBack = domain.RecallText
	set.Flashcards = []domain.Flashcard{domain.NewFlashcard("perro", "dog")}
	return set
}

func backOnly() quiz.Conditions {
	return quiz.Conditions{IncludeCardBack: true}
}

func TestPlay_TextAnswers(t *testing.T) {
	t.Parallel()

	session := quiz.NewSession(textSet(), backOnly(), quiz.SessionOptions{}, rand.New(rand.NewPCG(1, 2)))

	var out bytes.Buffer
	result := play(context.Background(), strings.NewReader("DOG\n"), &out, session)

	if result.Asked != 1 || result.Correct != 1 {
		t.Errorf("result = %+v, want 1/1", result)
	}
	if !strings.Contains(out.String(), "perro") {
		t.Errorf("prompt missing from output: %s", out.String())
	}
	if !strings.Contains(out.String(), "1/1 correct") {
		t.Errorf("summary missing from output: %s", out.String())
	}
}

func TestPlay_WrongTextShowsAnswers(t *testing.T) {
	t.Parallel()

	session := quiz.NewSession(textSet(), backOnly(), quiz.SessionOptions{}, rand.New(rand.NewPCG(1, 2)))

	var out bytes.Buffer
	result := play(context.Background(), strings.NewReader("cat\n"), &out, session)

	if result.Incorrect != 1 {
		t.Errorf("result = %+v, want 1 incorrect", result)
	}
	if !strings.Contains(out.String(), `accepted: "dog"`) {
		t.Errorf("accepted answers missing: %s", out.String())
	}
}

func TestPlay_MultipleChoiceRetriesInvalidInput(t *testing.T) {
	t.Parallel()

	set := domain.NewSet()
	set.MCCards = []domain.McCard{domain.NewMcCard("capital of Spain", "Madrid", "Lisbon")}
	session := quiz.NewSession(set, quiz.Conditions{IncludeMC: true}, quiz.SessionOptions{OptionCount: 2}, rand.New(rand.NewPCG(3, 4)))

	var out bytes.Buffer
	result := play(context.Background(), strings.NewReader("x\n9\n1\n"), &out, session)

	if result.Asked != 1 {
		t.Fatalf("result = %+v, want 1 asked", result)
	}
	if got := strings.Count(out.String(), "enter a number between 1 and 2"); got != 2 {
		t.Errorf("retry hints = %d, want 2\n%s", got, out.String())
	}
}

func TestPlay_QuitStopsEarly(t *testing.T) {
	t.Parallel()

	set := textSet()
	set.Flashcards = append(set.Flashcards, domain.NewFlashcard("gato", "cat"))
	session := quiz.NewSession(set, backOnly(), quiz.SessionOptions{}, rand.New(rand.NewPCG(1, 2)))

	var out bytes.Buffer
	result := play(context.Background(), strings.NewReader(":q\n"), &out, session)

	if result.Asked != 0 {
		t.Errorf("result = %+v, want nothing asked", result)
	}
	if session.Remaining() != 1 {
		t.Errorf("Remaining = %d, want 1", session.Remaining())
	}
}

func TestPlay_EOFEndsSession(t *testing.T) {
	t.Parallel()

	session := quiz.NewSession(textSet(), backOnly(), quiz.SessionOptions{}, rand.New(rand.NewPCG(1, 2)))

	var out bytes.Buffer
	result := play(context.Background(), strings.NewReader(""), &out, session)

	if result.Asked != 0 {
		t.Errorf("result = %+v, want nothing asked", result)
	}
	if !strings.Contains(out.String(), "0/0 correct") {
		t.Errorf("summary missing: %s", out.String())
	}
}

func TestPlay_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := quiz.NewSession(textSet(), backOnly(), quiz.SessionOptions{}, rand.New(rand.NewPCG(1, 2)))

	var out bytes.Buffer
	result := play(ctx, strings.NewReader("dog\n"), &out, session)

	if result.Asked != 0 {
		t.Errorf("result = %+v, want nothing asked", result)
	}
}
