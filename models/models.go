package models

import "fmt"

// Dot is an immutable zero-based grid coordinate.
type Dot struct {
	x int
	y int
}

func NewDot(x, y int) Dot {
	return Dot{x: x, y: y}
}

func (d Dot) X() int { return d.x }
func (d Dot) Y() int { return d.y }

// Add returns the component-wise sum of d and o.
func (d Dot) Add(o Dot) Dot {
	return Dot{x: d.x + o.x, y: d.y + o.y}
}

func (d Dot) String() string {
	return fmt.Sprintf("Dot(x:%d, y:%d)", d.x, d.y)
}

// Cell is the render state of a single board position.
type Cell int

const (
	CellEmpty Cell = iota
	CellShip
	CellHit
	CellMiss
	CellContour
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellShip:
		return "Ship"
	case CellHit:
		return "Hit"
	case CellMiss:
		return "Miss"
	case CellContour:
		return "Contour"
	default:
		return "Unknown"
	}
}

// ShotResult tags the outcome of a shot at a board.
type ShotResult int

const (
	ShotUnknown ShotResult = iota
	ShotMiss
	ShotHit
	ShotSunk
	ShotOutOfBounds
	ShotAlreadyTargeted
)

func (r ShotResult) String() string {
	switch r {
	case ShotMiss:
		return "Miss"
	case ShotHit:
		return "Hit"
	case ShotSunk:
		return "Sunk"
	case ShotOutOfBounds:
		return "OutOfBounds"
	case ShotAlreadyTargeted:
		return "AlreadyTargeted"
	default:
		return "Unknown"
	}
}

// Rejected reports whether the shot was refused and the mover has to pick
// another target.
func (r ShotResult) Rejected() bool {
	return r == ShotOutOfBounds || r == ShotAlreadyTargeted
}

// Repeat reports whether the mover keeps the turn. A sinking shot passes
// the turn just like a miss.
func (r ShotResult) Repeat() bool {
	return r == ShotHit
}
