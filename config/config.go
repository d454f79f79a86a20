package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	UIConsole = "console"
	UITUI     = "tui"
)

// Board sizes outside this range either cannot fit the fleet or do not fit
// the terminal board.
const (
	MinSize = 6
	MaxSize = 10
)

// Config holds game configuration read from the environment.
type Config struct {
	Size     int    `env:"BATTLESHIP_SIZE"      envDefault:"6"`
	Seed     uint64 `env:"BATTLESHIP_SEED"`
	UI       string `env:"BATTLESHIP_UI"        envDefault:"console"`
	Lang     string `env:"BATTLESHIP_LANG"      envDefault:"en"`
	LogLevel string `env:"BATTLESHIP_LOG_LEVEL" envDefault:"warn"`
	LogFile  string `env:"BATTLESHIP_LOG_FILE"`
}

// Load reads envFile if it exists, then parses and validates the environment.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Size < MinSize || c.Size > MaxSize {
		return fmt.Errorf("board size must be between %d and %d, got %d", MinSize, MaxSize, c.Size)
	}
	switch c.UI {
	case UIConsole, UITUI:
	default:
		return fmt.Errorf("unknown ui %q", c.UI)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel onto a logger level.
func (c Config) Level() (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
