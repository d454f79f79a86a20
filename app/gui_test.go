package app

import (
	"testing"

	gui "github.com/grupawp/warships-gui/v2"

	"github.com/wojtekolesinski/seabattle/models"
)

func TestStates(t *testing.T) {
	b := playBoard(t,
		[2]models.Dot{dot(0, 0), dot(0, 1)},
		[2]models.Dot{dot(3, 4), dot(3, 4)},
	)
	b.Shot(dot(0, 0))
	b.Shot(dot(5, 0))

	s := states(b)
	tests := []struct {
		d    models.Dot
		want gui.State
	}{
		{dot(0, 0), gui.Hit},
		{dot(0, 1), gui.Ship},
		{dot(3, 4), gui.Ship},
		{dot(5, 0), gui.Miss},
		{dot(2, 2), gui.Empty},
		{dot(9, 9), gui.Empty},
	}
	for _, tt := range tests {
		if have := s[tt.d.X()][tt.d.Y()]; have != tt.want {
			t.Errorf("state at %v: want=%v, have=%v", tt.d, tt.want, have)
		}
	}

	b.SetConcealed(true)
	s = states(b)
	if have := s[0][1]; have != gui.Empty {
		t.Errorf("concealed ship: want empty, have %v", have)
	}
	if have := s[0][0]; have != gui.Hit {
		t.Errorf("hits stay visible on a concealed board, have %v", have)
	}
}
