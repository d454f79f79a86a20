package board

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/wojtekolesinski/seabattle/models"
)

// MaxAttempts caps the placement attempts shared by a whole fleet.
const MaxAttempts = 1000

// DefaultFleet lists ship lengths for a standard 6x6 board.
var DefaultFleet = []int{3, 2, 2, 1, 1, 1, 1}

// ErrAttemptsExhausted is returned by Build when the fleet could not be
// placed within the attempt budget.
var ErrAttemptsExhausted = errors.New("placement attempts exhausted")

// Rand is the source of randomness; *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Generator places fleets at random positions.
type Generator struct {
	Fleet       []int
	MaxAttempts int

	rng Rand
}

func NewGenerator(rng Rand) *Generator {
	return &Generator{
		Fleet:       DefaultFleet,
		MaxAttempts: MaxAttempts,
		rng:         rng,
	}
}

// Ship returns a random ship of the given length. Bow coordinates are drawn
// from [0, fieldSize] inclusive; bows past the edge are left for AddShip to
// reject.
func (g *Generator) Ship(length, fieldSize int) (*Ship, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: ship length must be positive, got %d", models.ErrInvalidArgument, length)
	}
	bow := models.NewDot(g.rng.IntN(fieldSize+1), g.rng.IntN(fieldSize+1))
	if length == 1 {
		return NewShip(bow, bow)
	}
	orientation := []models.Dot{
		models.NewDot(0, length-1),
		models.NewDot(length-1, 0),
	}
	return NewShip(bow, bow.Add(orientation[g.rng.IntN(len(orientation))]))
}

// Build tries to place the whole fleet on a fresh board and starts play on
// success. It returns ErrAttemptsExhausted once MaxAttempts placements have
// failed in total.
func (g *Generator) Build(size int, concealed bool) (*Board, error) {
	b, err := New(size, concealed)
	if err != nil {
		return nil, err
	}

	attempts := 0
	for _, length := range g.Fleet {
		for {
			attempts++
			if attempts > g.MaxAttempts {
				return nil, fmt.Errorf("%w: %d attempts on a %dx%d board", ErrAttemptsExhausted, g.MaxAttempts, size, size)
			}
			ship, err := g.Ship(length, size)
			if err != nil {
				return nil, err
			}
			if err := b.AddShip(ship); err != nil {
				if errors.Is(err, models.ErrIllegalPlacement) {
					continue
				}
				return nil, err
			}
			break
		}
	}

	b.BeginPlay()
	log.Debug("board [Build]", "size", size, "ships", len(b.ships), "attempts", attempts)
	return b, nil
}

// Random keeps calling Build until a board comes out. Only exhausted budgets
// are retried; any other error is returned.
func (g *Generator) Random(size int, concealed bool) (*Board, error) {
	for try := 1; ; try++ {
		b, err := g.Build(size, concealed)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, ErrAttemptsExhausted) {
			return nil, err
		}
		log.Debug("board [Random]", "try", try, "err", err)
	}
}
