package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/heartmarshall/efcquiz/internal/domain"
	"github.com/heartmarshall/efcquiz/internal/service/quiz"
)

const quitCommand = ":q"

var (
	correctColor = color.New(color.FgGreen)
	wrongColor   = color.New(color.FgRed)
	promptColor  = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.Faint)
)

// play asks every question of session, reading answers from in, until the
// questions run out, the input ends, the player quits, or ctx is done.
func play(ctx context.Context, in io.Reader, out io.Writer, session *quiz.Session) quiz.Result {
	scanner := bufio.NewScanner(in)

	for ctx.Err() == nil {
		item, ok := session.Next()
		if !ok {
			break
		}

		fmt.Fprintln(out)
		promptColor.Fprintln(out, item.Prompt)

		var correct, answered bool
		if item.Mode == domain.RecallMC {
			correct, answered = askChoice(scanner, out, session, item)
		} else {
			correct, answered = askText(scanner, out, session, item)
		}
		if !answered {
			break
		}
		feedback(out, item, correct)
	}

	result := session.Result()
	summary(out, result)
	return result
}

func askText(scanner *bufio.Scanner, out io.Writer, session *quiz.Session, item quiz.Item) (bool, bool) {
	fmt.Fprint(out, "> ")
	if !scanner.Scan() {
		return false, false
	}
	answer := scanner.Text()
	if strings.TrimSpace(answer) == quitCommand {
		return false, false
	}
	return session.Answer(item, answer), true
}

func askChoice(scanner *bufio.Scanner, out io.Writer, session *quiz.Session, item quiz.Item) (bool, bool) {
	for i, option := range item.Options.Items() {
		fmt.Fprintf(out, "  %d) %s\n", i+1, option)
	}
	for {
		fmt.Fprintf(out, "[1-%d] > ", item.Options.Len())
		if !scanner.Scan() {
			return false, false
		}
		input := strings.TrimSpace(scanner.Text())
		if input == quitCommand {
			return false, false
		}
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > item.Options.Len() {
			dimColor.Fprintf(out, "enter a number between 1 and %d\n", item.Options.Len())
			continue
		}
		return session.Choose(item, n-1), true
	}
}

func feedback(out io.Writer, item quiz.Item, correct bool) {
	if correct {
		correctColor.Fprintln(out, "correct")
		return
	}
	if item.Mode == domain.RecallMC {
		wrongColor.Fprintf(out, "wrong, the answer is %q\n", item.Options.Correct())
		return
	}
	wrongColor.Fprintf(out, "wrong, accepted: %s\n", quoteAll(item.Question.Answers()))
}

func quoteAll(texts []string) string {
	quoted := make([]string, len(texts))
	for i, t := range texts {
		quoted[i] = strconv.Quote(t)
	}
	return strings.Join(quoted, ", ")
}

func summary(out io.Writer, r quiz.Result) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d/%d correct (%.0f%%)", r.Correct, r.Asked, r.Accuracy()*100)
	if r.Skipped > 0 {
		dimColor.Fprintf(out, ", %d skipped", r.Skipped)
	}
	fmt.Fprintln(out)
}
