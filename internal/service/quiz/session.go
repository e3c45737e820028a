package quiz

import (
	"github.com/heartmarshall/efcquiz/internal/domain"
)

// DefaultOptionCount is the number of options offered by multiple choice
// items when SessionOptions.OptionCount is not set.
const DefaultOptionCount = 4

// SessionOptions tune how a Session presents questions.
type SessionOptions struct {
	// OptionCount is the requested size of multiple choice lists.
	OptionCount int
	// Shuffle randomizes question order once, when the session starts.
	Shuffle bool
}

// Item is a question ready to be shown.
type Item struct {
	Question Question
	Prompt   string
	// Mode is RecallMC when Options is set, RecallText otherwise.
	Mode    domain.RecallType
	Options McList
}

// Result holds the tally of a session.
type Result struct {
	Asked     int
	Correct   int
	Incorrect int
	// Skipped counts questions that could not be asked: no prompt text, or a
	// multiple choice question for which no decoys could be found.
	Skipped int
}

// Accuracy returns Correct/Asked, or 0 when nothing was asked.
func (r Result) Accuracy() float64 {
	if r.Asked == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Asked)
}

// Session walks a player through the questions of a Set once.
type Session struct {
	questions []Question
	pos       int
	rng       domain.Rand
	opts      SessionOptions
	result    Result
}

// NewSession prepares a session over the questions selected by cond. All
// randomness, including the optional shuffle, comes from rng.
func NewSession(set *domain.Set, cond Conditions, opts SessionOptions, rng domain.Rand) *Session {
	if opts.OptionCount <= 0 {
		opts.OptionCount = DefaultOptionCount
	}

	questions := NewQuestions(set, cond).Collect()
	if opts.Shuffle {
		for i := len(questions) - 1; i > 0; i-- {
			j := rng.IntN(i + 1)
			questions[i], questions[j] = questions[j], questions[i]
		}
	}

	return &Session{questions: questions, rng: rng, opts: opts}
}

// Remaining returns how many questions have not been drawn yet, including
// ones that will turn out to be skipped.
func (s *Session) Remaining() int {
	return len(s.questions) - s.pos
}

// Next draws the next askable question. Questions that cannot be asked are
// skipped and counted in Result.Skipped. A multiple choice question without
// decoys has no typed fallback, so a set with one flashcard whose recall is
// RecallMC yields no flashcard questions at all.
func (s *Session) Next() (Item, bool) {
	for s.pos < len(s.questions) {
		q := s.questions[s.pos]
		s.pos++

		item, ok := s.prepare(q)
		if !ok {
			s.result.Skipped++
			continue
		}
		return item, true
	}
	return Item{}, false
}

func (s *Session) prepare(q Question) (Item, bool) {
	prompt, ok := q.Prompt(s.rng)
	if !ok {
		return Item{}, false
	}
	item := Item{Question: q, Prompt: prompt, Mode: domain.RecallText}

	if q.Recall() == domain.RecallMC {
		options, ok := q.MCAnswers(s.opts.OptionCount, s.rng)
		if !ok {
			return Item{}, false
		}
		item.Mode = domain.RecallMC
		item.Options = options
	}
	return item, true
}

// Answer grades a typed answer and records the outcome.
func (s *Session) Answer(item Item, answer string) bool {
	return s.record(item.Question.IsCorrectAnswer(answer))
}

// Choose grades the option at index i of a multiple choice item.
func (s *Session) Choose(item Item, i int) bool {
	return s.record(item.Mode == domain.RecallMC && i == item.Options.CorrectIndex())
}

func (s *Session) record(correct bool) bool {
	s.result.Asked++
	if correct {
		s.result.Correct++
	} else {
		s.result.Incorrect++
	}
	return correct
}

// Result returns the tally so far.
func (s *Session) Result() Result {
	return s.result
}
