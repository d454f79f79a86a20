package app

import (
	"context"

	"github.com/charmbracelet/log"
	gui "github.com/grupawp/warships-gui/v2"
	"golang.org/x/text/message"

	"github.com/wojtekolesinski/seabattle/board"
	"github.com/wojtekolesinski/seabattle/i18n"
	"github.com/wojtekolesinski/seabattle/models"
)

const historyLines = 4

// tui draws both boards in the terminal and takes the user's shots as clicks
// on the computer's board.
type tui struct {
	gui      *gui.GUI
	user     *gui.Board
	computer *gui.Board
	turnText *gui.Text
	exitText *gui.Text
	history  []*gui.Text
	lines    []string
	p        *message.Printer
}

func newTUI(p *message.Printer) *tui {
	g := gui.NewGUI(true)
	user := gui.NewBoard(2, 6, nil)
	computer := gui.NewBoard(60, 6, nil)
	exitText := gui.NewText(2, 2, p.Sprintf(i18n.PressToExit), nil)
	turnText := gui.NewText(2, 4, "", nil)

	g.Draw(user)
	g.Draw(computer)
	g.Draw(exitText)
	g.Draw(turnText)
	g.Draw(gui.NewText(2, 28, p.Sprintf(i18n.UserBoard), nil))
	g.Draw(gui.NewText(60, 28, p.Sprintf(i18n.ComputerBoard), nil))

	history := make([]*gui.Text, historyLines)
	for i := range history {
		history[i] = gui.NewText(60, 30+i, "", nil)
		g.Draw(history[i])
	}

	return &tui{
		gui:      g,
		user:     user,
		computer: computer,
		turnText: turnText,
		exitText: exitText,
		history:  history,
		p:        p,
	}
}

func (u *tui) Greet() {
	for i, l := range greeting(u.p) {
		u.gui.Draw(gui.NewText(2, 30+i, l, nil))
	}
}

func (u *tui) Render(user, computer *board.Board) {
	u.user.SetStates(states(user))
	u.computer.SetStates(states(computer))
}

// Say shows turn changes in the turn line and everything else in a short
// scrolling history, newest at the bottom.
func (u *tui) Say(key string, args ...any) {
	text := u.p.Sprintf(key, args...)
	switch key {
	case i18n.UserTurn, i18n.ComputerTurn:
		u.turnText.SetText(text)
		return
	}
	u.lines = append(u.lines, text)
	if len(u.lines) > len(u.history) {
		u.lines = u.lines[len(u.lines)-len(u.history):]
	}
	for i, l := range u.lines {
		u.history[i].SetText(l)
	}
}

func (u *tui) Finish(w Winner) {
	if w == UserWon {
		u.turnText.SetBgColor(gui.Green)
	} else {
		u.turnText.SetBgColor(gui.Red)
	}
	u.turnText.SetFgColor(gui.White)
	u.turnText.SetText(u.p.Sprintf(winnerMessage(w)))
}

// states maps a board onto the fixed 10x10 terminal grid, indexed [x][y].
func states(b *board.Board) [10][10]gui.State {
	var out [10][10]gui.State
	for x := range out {
		for y := range out[x] {
			out[x][y] = gui.Empty
		}
	}
	for y, row := range b.Grid() {
		for x, c := range row {
			if x >= 10 || y >= 10 {
				continue
			}
			out[x][y] = guiState(c, b.Concealed())
		}
	}
	return out
}

func guiState(c models.Cell, concealed bool) gui.State {
	switch c {
	case models.CellShip:
		if concealed {
			return gui.Empty
		}
		return gui.Ship
	case models.CellHit:
		return gui.Hit
	case models.CellMiss, models.CellContour:
		return gui.Miss
	default:
		return gui.Empty
	}
}

// tuiPlayer waits for a click on the enemy board.
type tuiPlayer struct {
	board *gui.Board
}

func newTUIPlayer(b *gui.Board) *tuiPlayer {
	return &tuiPlayer{board: b}
}

func (p *tuiPlayer) Target(ctx context.Context) (models.Dot, error) {
	for {
		coords := p.board.Listen(ctx)
		if err := ctx.Err(); err != nil {
			return models.Dot{}, err
		}
		d, err := parseCoords(coords)
		if err != nil {
			log.Debug("app [tuiPlayer.Target]", "coords", coords, "err", err)
			continue
		}
		return d, nil
	}
}
