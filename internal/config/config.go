package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Quiz     QuizConfig     `yaml:"quiz"`
	Deck     DeckConfig     `yaml:"deck"`
}

// DatabaseConfig holds PostgreSQL connection settings. The DSN is only
// needed by commands that use the deck store; see RequireDatabase.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// QuizConfig holds the defaults for an interactive quiz run.
type QuizConfig struct {
	OptionCount  int    `yaml:"option_count"  env:"QUIZ_OPTION_COUNT"  env-default:"4"`
	IncludeFront bool   `yaml:"include_front" env:"QUIZ_INCLUDE_FRONT" env-default:"true"`
	IncludeBack  bool   `yaml:"include_back"  env:"QUIZ_INCLUDE_BACK"  env-default:"true"`
	IncludeMC    bool   `yaml:"include_mc"    env:"QUIZ_INCLUDE_MC"    env-default:"true"`
	Shuffle      bool   `yaml:"shuffle"       env:"QUIZ_SHUFFLE"       env-default:"true"`
	// Seed fixes the random source; 0 means a fresh seed per run.
	Seed uint64 `yaml:"seed" env:"QUIZ_SEED" env-default:"0"`
}

// DeckConfig holds deck store settings.
type DeckConfig struct {
	MaxNameLength int `yaml:"max_name_length" env:"DECK_MAX_NAME_LENGTH" env-default:"100"`
	ListLimit     int `yaml:"list_limit"      env:"DECK_LIST_LIMIT"      env-default:"50"`
}
