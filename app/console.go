package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/text/message"

	"github.com/wojtekolesinski/seabattle/board"
	"github.com/wojtekolesinski/seabattle/i18n"
	"github.com/wojtekolesinski/seabattle/models"
)

// console prints the game as plain text.
type console struct {
	out io.Writer
	p   *message.Printer
}

func newConsole(out io.Writer, p *message.Printer) *console {
	return &console{out: out, p: p}
}

func (c *console) Greet() {
	for _, l := range greeting(c.p) {
		fmt.Fprintln(c.out, l)
	}
}

func (c *console) Render(user, computer *board.Board) {
	fmt.Fprintln(c.out, rule)
	c.Say(i18n.UserBoard)
	board.Render(c.out, user)
	fmt.Fprintln(c.out, rule)
	c.Say(i18n.ComputerBoard)
	board.Render(c.out, computer)
	fmt.Fprintln(c.out, rule)
}

func (c *console) Say(key string, args ...any) {
	c.p.Fprintf(c.out, key, args...)
	fmt.Fprintln(c.out)
}

func (c *console) Finish(w Winner) {
	fmt.Fprintln(c.out, rule)
	c.Say(winnerMessage(w))
}

// consolePlayer reads moves typed as "x y". Malformed lines are answered with
// a hint and read again.
type consolePlayer struct {
	in *bufio.Scanner
	ui *console
}

func newConsolePlayer(in io.Reader, ui *console) *consolePlayer {
	return &consolePlayer{in: bufio.NewScanner(in), ui: ui}
}

func (c *consolePlayer) Target(ctx context.Context) (models.Dot, error) {
	for {
		if err := ctx.Err(); err != nil {
			return models.Dot{}, err
		}
		c.ui.p.Fprintf(c.ui.out, i18n.Prompt)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return models.Dot{}, fmt.Errorf("read move: %w", err)
			}
			return models.Dot{}, fmt.Errorf("read move: %w", io.EOF)
		}

		d, err := parseMove(c.in.Text())
		switch {
		case errors.Is(err, errCoordCount):
			c.ui.Say(i18n.NeedTwoCoords)
		case errors.Is(err, errCoordNumber):
			c.ui.Say(i18n.NeedNumbers)
		case err != nil:
			return models.Dot{}, err
		default:
			return d, nil
		}
		log.Debug("app [consolePlayer.Target]", "err", err)
	}
}
