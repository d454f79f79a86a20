package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/wojtekolesinski/seabattle/board"
	"github.com/wojtekolesinski/seabattle/i18n"
	"github.com/wojtekolesinski/seabattle/models"
)

var errScriptDone = errors.New("script done")

type scripted struct {
	name    string
	targets []models.Dot
	calls   *[]string
}

func (s *scripted) Target(ctx context.Context) (models.Dot, error) {
	if len(s.targets) == 0 {
		return models.Dot{}, errScriptDone
	}
	d := s.targets[0]
	s.targets = s.targets[1:]
	*s.calls = append(*s.calls, s.name)
	return d, nil
}

type recorder struct {
	greeted  bool
	renders  int
	said     []string
	finished Winner
}

func (r *recorder) Greet()                      { r.greeted = true }
func (r *recorder) Render(_, _ *board.Board)    { r.renders++ }
func (r *recorder) Say(key string, args ...any) { r.said = append(r.said, key) }
func (r *recorder) Finish(w Winner)             { r.finished = w }

func dot(x, y int) models.Dot { return models.NewDot(x, y) }

func playBoard(t *testing.T, ships ...[2]models.Dot) *board.Board {
	t.Helper()
	b, err := board.New(6, false)
	if err != nil {
		t.Fatalf("new board: %v", err)
	}
	for _, ends := range ships {
		s, err := board.NewShip(ends[0], ends[1])
		if err != nil {
			t.Fatalf("new ship: %v", err)
		}
		if err := b.AddShip(s); err != nil {
			t.Fatalf("add ship: %v", err)
		}
	}
	b.BeginPlay()
	return b
}

func TestGame_TurnOrder(t *testing.T) {
	userBoard := playBoard(t, [2]models.Dot{dot(5, 5), dot(5, 5)})
	computerBoard := playBoard(t,
		[2]models.Dot{dot(0, 0), dot(1, 0)},
		[2]models.Dot{dot(4, 4), dot(4, 4)},
	)

	var calls []string
	user := &scripted{name: "user", calls: &calls, targets: []models.Dot{
		dot(9, 9), // out of bounds, asked again
		dot(0, 0), // hit, moves again
		dot(0, 0), // already targeted, asked again
		dot(1, 0), // sunk, turn passes
		dot(3, 3), // miss
		dot(4, 4), // sunk, last ship
	}}
	computer := &scripted{name: "computer", calls: &calls, targets: []models.Dot{
		dot(0, 5),
		dot(2, 2),
	}}
	ui := &recorder{}

	g := NewGame(userBoard, computerBoard, user, computer, ui)
	w, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != UserWon || ui.finished != UserWon {
		t.Errorf("want user to win, have %v (finished %v)", w, ui.finished)
	}

	want := []string{"user", "user", "user", "user", "computer", "user", "computer", "user"}
	if !reflect.DeepEqual(want, calls) {
		t.Errorf("unexpected call order:\nwant=%v\nhave=%v", want, calls)
	}
	if g.Moves() != 6 {
		t.Errorf("want 6 moves, have %d", g.Moves())
	}
	if g.user.Shots() != 4 || g.computer.Shots() != 2 {
		t.Errorf("unexpected shots: user=%d computer=%d", g.user.Shots(), g.computer.Shots())
	}
	if !ui.greeted {
		t.Error("expected greeting")
	}

	wantSaid := []string{
		i18n.UserTurn, i18n.OutOfBounds, i18n.ShipHit,
		i18n.UserTurn, i18n.AlreadyShot, i18n.ShipSunk,
		i18n.ComputerTurn, i18n.Miss,
		i18n.UserTurn, i18n.Miss,
		i18n.ComputerTurn, i18n.Miss,
		i18n.UserTurn, i18n.ShipSunk,
	}
	if !reflect.DeepEqual(wantSaid, ui.said) {
		t.Errorf("unexpected messages:\nwant=%v\nhave=%v", wantSaid, ui.said)
	}
}

func TestGame_ComputerWins(t *testing.T) {
	userBoard := playBoard(t, [2]models.Dot{dot(2, 2), dot(2, 2)})
	computerBoard := playBoard(t, [2]models.Dot{dot(0, 0), dot(0, 0)})

	var calls []string
	user := &scripted{name: "user", calls: &calls, targets: []models.Dot{dot(5, 5)}}
	computer := &scripted{name: "computer", calls: &calls, targets: []models.Dot{dot(2, 2)}}
	ui := &recorder{}

	w, err := NewGame(userBoard, computerBoard, user, computer, ui).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != ComputerWon || ui.finished != ComputerWon {
		t.Errorf("want computer to win, have %v", w)
	}
	if !userBoard.Defeated() || computerBoard.Defeated() {
		t.Error("unexpected defeat state")
	}
}

func TestGame_PlayerError(t *testing.T) {
	userBoard := playBoard(t, [2]models.Dot{dot(2, 2), dot(2, 2)})
	computerBoard := playBoard(t, [2]models.Dot{dot(0, 0), dot(0, 0)})

	var calls []string
	user := &scripted{name: "user", calls: &calls}
	computer := &scripted{name: "computer", calls: &calls}

	w, err := NewGame(userBoard, computerBoard, user, computer, &recorder{}).Run(context.Background())
	if !errors.Is(err, errScriptDone) {
		t.Fatalf("want script error, have %v", err)
	}
	if w != NoWinner {
		t.Errorf("want no winner, have %v", w)
	}
}

func TestGame_ID(t *testing.T) {
	b := playBoard(t)
	g := NewGame(b, b, nil, nil, &recorder{})
	if len(g.ID) != 6 {
		t.Errorf("want 6 character id, have %q", g.ID)
	}
}
