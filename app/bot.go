package app

import (
	"context"

	"github.com/wojtekolesinski/seabattle/board"
	"github.com/wojtekolesinski/seabattle/i18n"
	"github.com/wojtekolesinski/seabattle/models"
)

// bot picks targets uniformly at random and remembers nothing; repeated
// targets are rejected by the board and simply redrawn.
type bot struct {
	rng  board.Rand
	size int
	ui   Frontend
}

func newBot(rng board.Rand, size int, ui Frontend) *bot {
	return &bot{rng: rng, size: size, ui: ui}
}

func (b *bot) Target(ctx context.Context) (models.Dot, error) {
	if err := ctx.Err(); err != nil {
		return models.Dot{}, err
	}
	d := models.NewDot(b.rng.IntN(b.size), b.rng.IntN(b.size))
	b.ui.Say(i18n.ComputerTarget, d.X()+1, d.Y()+1)
	return d, nil
}
