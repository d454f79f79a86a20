package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wojtekolesinski/seabattle/models"
)

var (
	errCoordCount  = errors.New("expected two coordinates")
	errCoordNumber = errors.New("coordinates must be numbers")
)

// parseMove reads "x y" with 1-based column and row numbers.
func parseMove(line string) (models.Dot, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return models.Dot{}, fmt.Errorf("%w: got %d", errCoordCount, len(fields))
	}
	x, err := parseNumber(fields[0])
	if err != nil {
		return models.Dot{}, err
	}
	y, err := parseNumber(fields[1])
	if err != nil {
		return models.Dot{}, err
	}
	return models.NewDot(x-1, y-1), nil
}

// parseNumber accepts digits only, so signs and spaces are refused.
func parseNumber(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", errCoordNumber, s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errCoordNumber, s)
	}
	return n, nil
}

// parseCoords reads terminal board coordinates such as "B7": the letter is
// the column, the number the 1-based row.
func parseCoords(coords string) (models.Dot, error) {
	if len(coords) < 2 || coords[0] < 'A' || coords[0] > 'Z' {
		return models.Dot{}, fmt.Errorf("%w: %q", errCoordNumber, coords)
	}
	x := int(coords[0] - 'A')
	y, err := parseNumber(coords[1:])
	if err != nil {
		return models.Dot{}, err
	}
	return models.NewDot(x, y-1), nil
}
