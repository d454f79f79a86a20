package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/wojtekolesinski/seabattle/models"
)

var glyphs = map[models.Cell]string{
	models.CellEmpty:   "O",
	models.CellShip:    "■",
	models.CellHit:     "X",
	models.CellMiss:    "-",
	models.CellContour: "-",
}

// Glyph returns the character drawn for c. Ships on a concealed board are
// drawn as empty water.
func Glyph(c models.Cell, concealed bool) string {
	if concealed && c == models.CellShip {
		c = models.CellEmpty
	}
	return glyphs[c]
}

// Render writes the board as a text grid: columns are x, rows are y, both
// numbered from 1.
func Render(w io.Writer, b *Board) error {
	_, err := io.WriteString(w, b.String())
	return err
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  |")
	for x := 1; x <= b.size; x++ {
		fmt.Fprintf(&sb, " %d |", x)
	}
	sb.WriteString(" X\n")
	for y, row := range b.grid {
		fmt.Fprintf(&sb, "%d |", y+1)
		for _, c := range row {
			fmt.Fprintf(&sb, " %s |", Glyph(c, b.concealed))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Y\n")
	return sb.String()
}
