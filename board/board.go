package board

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/wojtekolesinski/seabattle/models"
)

// DefaultSize is the side length of a standard board.
const DefaultSize = 6

var neighbours = []models.Dot{
	models.NewDot(-1, 1), models.NewDot(0, 1), models.NewDot(1, 1),
	models.NewDot(-1, 0), models.NewDot(0, 0), models.NewDot(1, 0),
	models.NewDot(-1, -1), models.NewDot(0, -1), models.NewDot(1, -1),
}

// Board is one player's square grid of ships.
//
// During placement the busy set holds every ship cell and its contour, so new
// ships can neither overlap nor touch existing ones. BeginPlay clears it, after
// which it records every targeted cell and every contour revealed by a sink.
type Board struct {
	size      int
	concealed bool
	grid      [][]models.Cell
	ships     []*Ship
	busy      map[models.Dot]struct{}
	sunk      int
}

func New(size int, concealed bool) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: board size must be positive, got %d", models.ErrInvalidArgument, size)
	}
	grid := make([][]models.Cell, size)
	for i := range grid {
		grid[i] = make([]models.Cell, size)
	}
	return &Board{
		size:      size,
		concealed: concealed,
		grid:      grid,
		busy:      make(map[models.Dot]struct{}),
	}, nil
}

func (b *Board) Size() int       { return b.size }
func (b *Board) Concealed() bool { return b.concealed }
func (b *Board) SunkCount() int  { return b.sunk }

func (b *Board) SetConcealed(concealed bool) {
	b.concealed = concealed
}

// Ships returns the placed ships in placement order.
func (b *Board) Ships() []*Ship {
	out := make([]*Ship, len(b.ships))
	copy(out, b.ships)
	return out
}

// Cell returns the render state at d. Dots outside the board read as empty.
func (b *Board) Cell(d models.Dot) models.Cell {
	if b.IsOutOfBounds(d) {
		return models.CellEmpty
	}
	return b.grid[d.Y()][d.X()]
}

// Grid returns a copy of the render state, indexed [y][x].
func (b *Board) Grid() [][]models.Cell {
	out := make([][]models.Cell, b.size)
	for i, row := range b.grid {
		out[i] = append([]models.Cell(nil), row...)
	}
	return out
}

// Busy reports whether d is occupied, blocked or already targeted.
func (b *Board) Busy(d models.Dot) bool {
	_, ok := b.busy[d]
	return ok
}

func (b *Board) IsOutOfBounds(d models.Dot) bool {
	return d.X() < 0 || d.X() >= b.size || d.Y() < 0 || d.Y() >= b.size
}

// contour blocks every in-bounds cell touching the ship, including its own
// cells. With reveal set, untouched cells of the ring are marked for display.
func (b *Board) contour(s *Ship, reveal bool) {
	for _, cell := range s.Cells() {
		for _, offset := range neighbours {
			d := cell.Add(offset)
			if b.IsOutOfBounds(d) {
				continue
			}
			if reveal && b.grid[d.Y()][d.X()] == models.CellEmpty {
				b.grid[d.Y()][d.X()] = models.CellContour
			}
			b.busy[d] = struct{}{}
		}
	}
}

// AddShip places s on the board. Either every cell is placed or none is.
func (b *Board) AddShip(s *Ship) error {
	cells := s.Cells()
	for _, d := range cells {
		if b.IsOutOfBounds(d) {
			return fmt.Errorf("%w: %v is outside the board", models.ErrIllegalPlacement, d)
		}
		if b.Busy(d) {
			return fmt.Errorf("%w: %v is taken", models.ErrIllegalPlacement, d)
		}
	}

	for _, d := range cells {
		b.grid[d.Y()][d.X()] = models.CellShip
		b.busy[d] = struct{}{}
	}
	b.ships = append(b.ships, s)
	b.contour(s, false)
	return nil
}

// BeginPlay ends the placement phase. Ship cells stay on the grid but the
// busy set is emptied so every cell can be targeted once.
func (b *Board) BeginPlay() {
	b.busy = make(map[models.Dot]struct{})
}

// Shot fires at d. Rejected shots return ShotOutOfBounds or
// ShotAlreadyTargeted together with the matching wrapped error and leave the
// board untouched.
func (b *Board) Shot(d models.Dot) (models.ShotResult, error) {
	if b.IsOutOfBounds(d) {
		return models.ShotOutOfBounds, fmt.Errorf("%w: %v", models.ErrOutOfBounds, d)
	}
	if b.Busy(d) {
		return models.ShotAlreadyTargeted, fmt.Errorf("%w: %v", models.ErrAlreadyTargeted, d)
	}
	b.busy[d] = struct{}{}

	for _, s := range b.ships {
		if !s.Contains(d) {
			continue
		}
		s.hit()
		b.grid[d.Y()][d.X()] = models.CellHit
		if s.Sunk() {
			b.sunk++
			b.contour(s, true)
			log.Debug("board [Shot]", "dot", d, "result", models.ShotSunk, "sunk", b.sunk, "ships", len(b.ships))
			return models.ShotSunk, nil
		}
		log.Debug("board [Shot]", "dot", d, "result", models.ShotHit, "hp", s.Hitpoints())
		return models.ShotHit, nil
	}

	b.grid[d.Y()][d.X()] = models.CellMiss
	log.Debug("board [Shot]", "dot", d, "result", models.ShotMiss)
	return models.ShotMiss, nil
}

// Defeated reports whether every ship on a non-empty board has been sunk.
func (b *Board) Defeated() bool {
	return len(b.ships) > 0 && b.sunk == len(b.ships)
}
