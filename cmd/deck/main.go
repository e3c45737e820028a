// Command deck manages sets kept in the deck store.
//
// Usage:
//
//	deck import [-replace] [-strict] <name> <file.efc>
//	deck export <id|name> [file.efc]
//	deck list [-prefix p] [-limit n] [-offset n]
//	deck delete <id|name>
//
// A file argument of "-" means stdin or stdout.
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/heartmarshall/efcquiz/internal/app"
	"github.com/heartmarshall/efcquiz/internal/config"
	"github.com/heartmarshall/efcquiz/internal/domain"
	"github.com/heartmarshall/efcquiz/internal/service/deck"
)

var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	command := os.Args[1]
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()
	ctx, logger = app.NewRunContext(ctx, logger, "deck "+command)

	decks, err := app.OpenDecks(ctx, cfg, logger)
	if err != nil {
		logger.Error("open deck store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer decks.Close()

	err = run(ctx, decks.Service, command, os.Args[2:], os.Stdin, os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp):
		usage()
		os.Exit(2)
	default:
		logger.Error(command+" failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  deck import [-replace] [-strict] <name> <file.efc>
  deck export <id|name> [file.efc]
  deck list [-prefix p] [-limit n] [-offset n]
  deck delete <id|name>`)
}

func run(ctx context.Context, svc *deck.Service, command string, args []string, stdin io.Reader, stdout io.Writer) error {
	switch command {
	case "import":
		return runImport(ctx, svc, args, stdin, stdout)
	case "export":
		return runExport(ctx, svc, args, stdout)
	case "list":
		return runList(ctx, svc, args, stdout)
	case "delete":
		return runDelete(ctx, svc, args, stdout)
	}
	return fmt.Errorf("unknown command %q: %w", command, errUsage)
}

func runImport(ctx context.Context, svc *deck.Service, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	replace := fs.Bool("replace", false, "overwrite an existing deck with the same name")
	strict := fs.Bool("strict", false, "reject cards that can never be asked")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errUsage
	}

	in := stdin
	if path := fs.Arg(1); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		in = f
	}

	d, err := svc.Import(ctx, deck.ImportInput{
		Name:    fs.Arg(0),
		Content: in,
		Replace: *replace,
		Strict:  *strict,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s\t%s\t%d flashcards\t%d mc\n", d.ID, d.Name, d.FlashcardCount, d.MCCount)
	return nil
}

func runExport(ctx context.Context, svc *deck.Service, args []string, stdout io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	d, err := svc.Resolve(ctx, args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 || args[1] == "-" {
		return svc.Export(ctx, d.ID, stdout)
	}

	f, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("create %s: %w", args[1], err)
	}
	if err := svc.Export(ctx, d.ID, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runList(ctx context.Context, svc *deck.Service, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	prefix := fs.String("prefix", "", "only decks whose name starts with this")
	limit := fs.Int("limit", 0, "page size (0 uses the configured default)")
	offset := fs.Int("offset", 0, "number of decks to skip")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return errUsage
	}

	res, err := svc.List(ctx, deck.ListInput{NamePrefix: *prefix, Limit: *limit, Offset: *offset})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tFLASHCARDS\tMC\tUPDATED")
	for _, d := range res.Decks {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", d.ID, d.Name, d.FlashcardCount, d.MCCount, d.UpdatedAt.Format(time.DateTime))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d of %d decks\n", len(res.Decks), res.Total)
	return nil
}

func runDelete(ctx context.Context, svc *deck.Service, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}
	d, err := svc.Resolve(ctx, args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("deck %q: %w", args[0], err)
		}
		return err
	}
	if err := svc.Delete(ctx, deck.DeleteInput{DeckID: d.ID}); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "deleted %s (%s)\n", d.Name, d.ID)
	return nil
}
