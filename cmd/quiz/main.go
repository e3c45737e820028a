// Command quiz runs an interactive quiz in the terminal over a set read
// from an .efc file or from the deck store.
//
// Flags:
//
//	-file     path to an .efc file
//	-deck     stored deck ID or name (needs DATABASE_DSN)
//	-front    ask for card fronts (default from QUIZ_INCLUDE_FRONT)
//	-back     ask for card backs (default from QUIZ_INCLUDE_BACK)
//	-mc       ask multiple choice cards (default from QUIZ_INCLUDE_MC)
//	-options  size of multiple choice lists
//	-seed     random seed; 0 picks one
//	-shuffle  shuffle question order
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/heartmarshall/efcquiz/internal/adapter/efc"
	"github.com/heartmarshall/efcquiz/internal/app"
	"github.com/heartmarshall/efcquiz/internal/config"
	"github.com/heartmarshall/efcquiz/internal/domain"
	"github.com/heartmarshall/efcquiz/internal/service/quiz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	fileFlag := flag.String("file", "", "path to an .efc file")
	deckFlag := flag.String("deck", "", "stored deck ID or name")
	flag.BoolVar(&cfg.Quiz.IncludeFront, "front", cfg.Quiz.IncludeFront, "ask for card fronts")
	flag.BoolVar(&cfg.Quiz.IncludeBack, "back", cfg.Quiz.IncludeBack, "ask for card backs")
	flag.BoolVar(&cfg.Quiz.IncludeMC, "mc", cfg.Quiz.IncludeMC, "ask multiple choice cards")
	flag.IntVar(&cfg.Quiz.OptionCount, "options", cfg.Quiz.OptionCount, "size of multiple choice lists")
	flag.Uint64Var(&cfg.Quiz.Seed, "seed", cfg.Quiz.Seed, "random seed, 0 picks one")
	flag.BoolVar(&cfg.Quiz.Shuffle, "shuffle", cfg.Quiz.Shuffle, "shuffle question order")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}
	if (*fileFlag == "") == (*deckFlag == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -file or -deck is required")
		flag.Usage()
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid flags: %v\n", err)
		os.Exit(2)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, logger = app.NewRunContext(ctx, logger, "quiz")

	set, err := loadSet(ctx, cfg, logger, *fileFlag, *deckFlag)
	if err != nil {
		logger.Error("load set", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rng, seed := app.NewRand(cfg.Quiz.Seed)
	session := quiz.NewSession(set, app.QuizConditions(cfg.Quiz), quiz.SessionOptions{
		OptionCount: cfg.Quiz.OptionCount,
		Shuffle:     cfg.Quiz.Shuffle,
	}, rng)

	logger.Info("quiz started",
		slog.Uint64("seed", seed),
		slog.Int("questions", session.Remaining()),
	)

	result := play(ctx, os.Stdin, os.Stdout, session)

	logger.Info("quiz finished",
		slog.Int("asked", result.Asked),
		slog.Int("correct", result.Correct),
		slog.Int("skipped", result.Skipped),
	)
}

func loadSet(ctx context.Context, cfg *config.Config, logger *slog.Logger, file, ref string) (*domain.Set, error) {
	if file != "" {
		set, _, err := efc.Load(file)
		return set, err
	}

	decks, err := app.OpenDecks(ctx, cfg, logger)
	if err != nil {
		if errors.Is(err, config.ErrNoDatabase) {
			return nil, fmt.Errorf("-deck needs DATABASE_DSN: %w", err)
		}
		return nil, err
	}
	defer decks.Close()

	d, err := decks.Service.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	return d.Set, nil
}
