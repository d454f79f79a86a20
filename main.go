package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/wojtekolesinski/seabattle/app"
	"github.com/wojtekolesinski/seabattle/config"
)

const envFile = ".env"

func main() {
	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatal("main", "err", err)
	}

	level, _ := cfg.Level()
	log.SetLevel(level)
	closeLog, err := setupLogOutput(cfg)
	if err != nil {
		log.Fatal("main", "err", err)
	}
	defer closeLog()

	a, err := app.New(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal("main", "err", err)
	}
	if err := a.Run(context.Background()); err != nil && !errors.Is(err, io.EOF) {
		closeLog()
		log.SetOutput(os.Stderr)
		log.Fatal("main", "err", err)
	}
}

// setupLogOutput keeps log lines out of the terminal UI: they go to
// BATTLESHIP_LOG_FILE when set and are dropped otherwise.
func setupLogOutput(cfg config.Config) (func(), error) {
	if cfg.LogFile == "" {
		if cfg.UI == config.UITUI {
			log.SetOutput(io.Discard)
		}
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
