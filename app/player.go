package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/wojtekolesinski/seabattle/board"
	"github.com/wojtekolesinski/seabattle/i18n"
	"github.com/wojtekolesinski/seabattle/models"
)

// Player supplies the next target for a move. Legality is checked by the
// board being shot at, not by the player.
type Player interface {
	Target(ctx context.Context) (models.Dot, error)
}

// Side is one participant of a game: where its targets come from and which
// board they are fired at.
type Side struct {
	Name   string
	player Player
	enemy  *board.Board
	ui     Frontend
	shots  int
}

func NewSide(name string, player Player, enemy *board.Board, ui Frontend) *Side {
	return &Side{
		Name:   name,
		player: player,
		enemy:  enemy,
		ui:     ui,
	}
}

// Shots is the number of accepted shots fired by this side.
func (s *Side) Shots() int { return s.shots }

// Move asks the player for targets until one is accepted by the enemy board
// and reports whether the side moves again. Rejected shots are reported to
// the player and never end the move.
func (s *Side) Move(ctx context.Context) (bool, error) {
	for {
		target, err := s.player.Target(ctx)
		if err != nil {
			return false, fmt.Errorf("%s target: %w", s.Name, err)
		}

		res, err := s.enemy.Shot(target)
		if res.Rejected() {
			log.Debug("app [Move]", "side", s.Name, "err", err)
			s.ui.Say(resultMessage(res))
			continue
		}
		if err != nil {
			return false, fmt.Errorf("%s shot: %w", s.Name, err)
		}

		s.shots++
		log.Info("app [Move]", "side", s.Name, "target", target, "result", res)
		s.ui.Say(resultMessage(res))
		return res.Repeat(), nil
	}
}

func resultMessage(res models.ShotResult) string {
	switch res {
	case models.ShotHit:
		return i18n.ShipHit
	case models.ShotSunk:
		return i18n.ShipSunk
	case models.ShotOutOfBounds:
		return i18n.OutOfBounds
	case models.ShotAlreadyTargeted:
		return i18n.AlreadyShot
	default:
		return i18n.Miss
	}
}
