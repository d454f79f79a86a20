package app

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/wojtekolesinski/seabattle/board"
	"github.com/wojtekolesinski/seabattle/i18n"
)

type Winner int

const (
	NoWinner Winner = iota
	UserWon
	ComputerWon
)

func (w Winner) String() string {
	switch w {
	case UserWon:
		return "User"
	case ComputerWon:
		return "Computer"
	default:
		return "None"
	}
}

func winnerMessage(w Winner) string {
	if w == ComputerWon {
		return i18n.ComputerWon
	}
	return i18n.UserWon
}

// Frontend presents the game. Keys passed to Say are i18n message keys.
type Frontend interface {
	Greet()
	Render(user, computer *board.Board)
	Say(key string, args ...any)
	Finish(w Winner)
}

// Game alternates moves between the user and the computer until one fleet
// is sunk.
type Game struct {
	ID string

	user          *Side
	computer      *Side
	userBoard     *board.Board
	computerBoard *board.Board
	ui            Frontend
	moves         int
}

// NewGame pairs each player with the opponent's board: human fires at
// computerBoard, computer fires at userBoard.
func NewGame(userBoard, computerBoard *board.Board, human, computer Player, ui Frontend) *Game {
	return &Game{
		ID:            uuid.NewString()[:6],
		user:          NewSide("user", human, computerBoard, ui),
		computer:      NewSide("computer", computer, userBoard, ui),
		userBoard:     userBoard,
		computerBoard: computerBoard,
		ui:            ui,
	}
}

// Moves is the number of completed moves, counting repeated ones.
func (g *Game) Moves() int { return g.moves }

// Run plays until a board is defeated. A hit keeps the turn; a miss or a
// sink passes it. Errors only come from players that can no longer supply
// targets.
func (g *Game) Run(ctx context.Context) (Winner, error) {
	log.Info("app [Run]", "game", g.ID, "size", g.userBoard.Size())
	g.ui.Greet()

	stroke := 0
	for {
		g.ui.Render(g.userBoard, g.computerBoard)

		mover := g.user
		if stroke%2 == 0 {
			g.ui.Say(i18n.UserTurn)
		} else {
			mover = g.computer
			g.ui.Say(i18n.ComputerTurn)
		}

		repeat, err := mover.Move(ctx)
		if err != nil {
			log.Error("app [Run]", "game", g.ID, "side", mover.Name, "err", err)
			return NoWinner, err
		}
		g.moves++
		if repeat {
			stroke--
		}

		if w := g.winner(); w != NoWinner {
			g.ui.Render(g.userBoard, g.computerBoard)
			g.ui.Finish(w)
			log.Info("app [Run]", "game", g.ID, "winner", w, "moves", g.moves,
				"userShots", g.user.Shots(), "computerShots", g.computer.Shots())
			return w, nil
		}
		stroke++
	}
}

func (g *Game) winner() Winner {
	if g.computerBoard.Defeated() {
		return UserWon
	}
	if g.userBoard.Defeated() {
		return ComputerWon
	}
	return NoWinner
}
