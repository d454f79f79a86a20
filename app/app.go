package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/message"

	"github.com/wojtekolesinski/seabattle/board"
	"github.com/wojtekolesinski/seabattle/config"
	"github.com/wojtekolesinski/seabattle/i18n"
)

// App wires configuration, boards, players and a front end into one game.
type App struct {
	cfg  config.Config
	p    *message.Printer
	rng  *rand.Rand
	seed uint64
	in   io.Reader
	out  io.Writer
}

func New(cfg config.Config, in io.Reader, out io.Writer) (*App, error) {
	p, err := i18n.NewPrinter(cfg.Lang)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &App{
		cfg:  cfg,
		p:    p,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
		in:   in,
		out:  out,
	}, nil
}

// Run generates both boards and plays a game to the end.
func (a *App) Run(ctx context.Context) error {
	log.Debug("app [Run]", "seed", a.seed, "ui", a.cfg.UI, "lang", a.cfg.Lang)

	gen := board.NewGenerator(a.rng)
	userBoard, err := gen.Random(a.cfg.Size, false)
	if err != nil {
		return fmt.Errorf("generate user board: %w", err)
	}
	computerBoard, err := gen.Random(a.cfg.Size, true)
	if err != nil {
		return fmt.Errorf("generate computer board: %w", err)
	}

	if a.cfg.UI == config.UITUI {
		return a.runTUI(ctx, userBoard, computerBoard)
	}
	return a.runConsole(ctx, userBoard, computerBoard)
}

func (a *App) runConsole(ctx context.Context, userBoard, computerBoard *board.Board) error {
	ui := newConsole(a.out, a.p)
	game := NewGame(userBoard, computerBoard,
		newConsolePlayer(a.in, ui),
		newBot(a.rng, a.cfg.Size, ui),
		ui)
	_, err := game.Run(ctx)
	return err
}

// runTUI plays the game in the background while the terminal UI owns the
// main goroutine. The UI stays up after the game ends until the user quits.
func (a *App) runTUI(ctx context.Context, userBoard, computerBoard *board.Board) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ui := newTUI(a.p)
	game := NewGame(userBoard, computerBoard,
		newTUIPlayer(ui.computer),
		newBot(a.rng, a.cfg.Size, ui),
		ui)

	done := make(chan error, 1)
	go func() {
		_, err := game.Run(ctx)
		done <- err
	}()

	ui.gui.Start(ctx, nil)
	cancel()

	select {
	case err := <-done:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	default:
		return nil
	}
}
