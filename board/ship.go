package board

import (
	"fmt"

	"github.com/wojtekolesinski/seabattle/models"
)

// Ship is a straight run of cells between bow and stern. Its hitpoints are
// only ever lowered by the Board that owns it.
type Ship struct {
	bow       models.Dot
	stern     models.Dot
	hitpoints int
}

// NewShip builds a ship from two endpoints sharing a row or a column.
func NewShip(bow, stern models.Dot) (*Ship, error) {
	if bow.X() != stern.X() && bow.Y() != stern.Y() {
		return nil, fmt.Errorf("%w: ship endpoints %v and %v are not aligned", models.ErrInvalidArgument, bow, stern)
	}
	s := &Ship{bow: bow, stern: stern}
	s.hitpoints = s.Len()
	return s, nil
}

func (s *Ship) Bow() models.Dot   { return s.bow }
func (s *Ship) Stern() models.Dot { return s.stern }
func (s *Ship) Hitpoints() int    { return s.hitpoints }
func (s *Ship) Sunk() bool        { return s.hitpoints == 0 }

// Len is the number of cells the ship covers.
func (s *Ship) Len() int {
	if s.bow.X() == s.stern.X() {
		return abs(s.stern.Y()-s.bow.Y()) + 1
	}
	return abs(s.stern.X()-s.bow.X()) + 1
}

// Cells lists the occupied dots from bow to stern. Horizontal ships keep the
// stern's row.
func (s *Ship) Cells() []models.Dot {
	cells := make([]models.Dot, 0, s.Len())
	if s.bow.X() == s.stern.X() {
		step := sign(s.stern.Y() - s.bow.Y())
		for y := s.bow.Y(); ; y += step {
			cells = append(cells, models.NewDot(s.bow.X(), y))
			if y == s.stern.Y() {
				break
			}
		}
		return cells
	}
	step := sign(s.stern.X() - s.bow.X())
	for x := s.bow.X(); ; x += step {
		cells = append(cells, models.NewDot(x, s.stern.Y()))
		if x == s.stern.X() {
			break
		}
	}
	return cells
}

// Contains reports whether d is one of the ship's cells.
func (s *Ship) Contains(d models.Dot) bool {
	for _, c := range s.Cells() {
		if c == d {
			return true
		}
	}
	return false
}

func (s *Ship) String() string {
	return fmt.Sprintf("Ship(%v -> %v, hp:%d)", s.bow, s.stern, s.hitpoints)
}

func (s *Ship) hit() {
	if s.hitpoints > 0 {
		s.hitpoints--
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
