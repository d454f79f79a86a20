package board_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/wojtekolesinski/seabattle/board"
	"github.com/wojtekolesinski/seabattle/models"
)

type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func TestGenerator_Ship(t *testing.T) {
	tests := []struct {
		name   string
		vals   []int
		length int
		bow    models.Dot
		stern  models.Dot
	}{
		{"single", []int{4, 1}, 1, dot(4, 1), dot(4, 1)},
		{"single at inclusive edge", []int{6, 6}, 1, dot(6, 6), dot(6, 6)},
		{"vertical", []int{2, 3, 0}, 3, dot(2, 3), dot(2, 5)},
		{"horizontal", []int{2, 3, 1}, 3, dot(2, 3), dot(4, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := board.NewGenerator(&seqRand{vals: tt.vals})
			s, err := g.Ship(tt.length, 6)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Bow() != tt.bow || s.Stern() != tt.stern {
				t.Errorf("want %v -> %v, have %v -> %v", tt.bow, tt.stern, s.Bow(), s.Stern())
			}
			if s.Len() != tt.length {
				t.Errorf("want length %d, have %d", tt.length, s.Len())
			}
		})
	}
}

func TestGenerator_Ship_InvalidLength(t *testing.T) {
	g := board.NewGenerator(rand.New(rand.NewPCG(1, 1)))
	if _, err := g.Ship(0, 6); !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument, have %v", err)
	}
}

func checkFleet(t *testing.T, b *board.Board, fleet []int) {
	t.Helper()
	ships := b.Ships()
	if len(ships) != len(fleet) {
		t.Fatalf("want %d ships, have %d", len(fleet), len(ships))
	}
	for i, s := range ships {
		if s.Len() != fleet[i] {
			t.Errorf("ship %d: want length %d, have %d", i, fleet[i], s.Len())
		}
		for _, d := range s.Cells() {
			if b.IsOutOfBounds(d) {
				t.Errorf("ship %v is off the board", s)
			}
			if b.Busy(d) {
				t.Errorf("cell %v is busy after BeginPlay", d)
			}
		}
		for _, other := range ships[i+1:] {
			for _, a := range s.Cells() {
				for _, c := range other.Cells() {
					if abs(a.X()-c.X()) <= 1 && abs(a.Y()-c.Y()) <= 1 {
						t.Errorf("ships %v and %v touch at %v/%v", s, other, a, c)
					}
				}
			}
		}
	}
}

func TestGenerator_Build_DefaultFleet(t *testing.T) {
	g := board.NewGenerator(rand.New(rand.NewPCG(42, 7)))

	built := 0
	for i := 0; i < 1000; i++ {
		b, err := g.Build(board.DefaultSize, false)
		if err != nil {
			if !errors.Is(err, board.ErrAttemptsExhausted) {
				t.Fatalf("unexpected error: %v", err)
			}
			continue
		}
		built++
		checkFleet(t, b, board.DefaultFleet)
	}
	if built == 0 {
		t.Fatal("no board was built in 1000 runs")
	}
}

func TestGenerator_Build_Unsatisfiable(t *testing.T) {
	g := board.NewGenerator(rand.New(rand.NewPCG(3, 3)))
	b, err := g.Build(1, false)
	if !errors.Is(err, board.ErrAttemptsExhausted) {
		t.Fatalf("want ErrAttemptsExhausted, have %v", err)
	}
	if b != nil {
		t.Error("expected no board")
	}
}

func TestGenerator_Build_CustomFleet(t *testing.T) {
	g := board.NewGenerator(rand.New(rand.NewPCG(5, 9)))
	g.Fleet = []int{1}

	b, err := g.Random(1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkFleet(t, b, g.Fleet)
	if !b.Concealed() {
		t.Error("expected concealed board")
	}

	res, err := b.Shot(dot(0, 0))
	if err != nil || res != models.ShotSunk {
		t.Fatalf("want Sunk, have result=%v err=%v", res, err)
	}
	if !b.Defeated() {
		t.Error("expected board to be defeated")
	}
}

func TestGenerator_Random(t *testing.T) {
	g := board.NewGenerator(rand.New(rand.NewPCG(11, 13)))
	for i := 0; i < 20; i++ {
		b, err := g.Random(board.DefaultSize, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checkFleet(t, b, board.DefaultFleet)
	}
}

func TestGenerator_Random_InvalidSize(t *testing.T) {
	g := board.NewGenerator(rand.New(rand.NewPCG(1, 2)))
	if _, err := g.Random(0, false); !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument, have %v", err)
	}
}
