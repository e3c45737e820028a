package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Option count bounds for multiple choice lists.
const (
	MinOptionCount = 2
	MaxOptionCount = 64
)

// ErrNoDatabase is returned by RequireDatabase when no DSN is configured.
var ErrNoDatabase = errors.New("database.dsn is required for this command")

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}
	if err := c.Deck.validate(); err != nil {
		return fmt.Errorf("deck: %w", err)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database: min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	return nil
}

// RequireDatabase reports ErrNoDatabase if the deck store is not configured.
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return ErrNoDatabase
	}
	return nil
}

func (l *LogConfig) validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return fmt.Errorf("level %q: %w", l.Level, err)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (q *QuizConfig) validate() error {
	if q.OptionCount < MinOptionCount || q.OptionCount > MaxOptionCount {
		return fmt.Errorf("option_count must be in [%d, %d] (got %d)", MinOptionCount, MaxOptionCount, q.OptionCount)
	}
	if !q.IncludeFront && !q.IncludeBack && !q.IncludeMC {
		return fmt.Errorf("at least one of include_front, include_back, include_mc must be set")
	}
	return nil
}

func (d *DeckConfig) validate() error {
	if d.MaxNameLength <= 0 {
		return fmt.Errorf("max_name_length must be > 0 (got %d)", d.MaxNameLength)
	}
	if d.ListLimit <= 0 {
		return fmt.Errorf("list_limit must be > 0 (got %d)", d.ListLimit)
	}
	return nil
}
