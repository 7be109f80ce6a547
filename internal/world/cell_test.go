package world

import "testing"

func TestCellDirectionalHelpers(t *testing.T) {
	c := NewCell(10, 10)

	tests := []struct {
		name string
		got  Cell
		want Cell
	}{
		{"left", c.Left(), Cell{X: 11, Y: 10}},
		{"right", c.Right(), Cell{X: 9, Y: 10}},
		{"up", c.Up(), Cell{X: 10, Y: 9}},
		{"down", c.Down(), Cell{X: 10, Y: 11}},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestCellMoveMatchesHelpers(t *testing.T) {
	c := NewCell(3, 7)

	tests := []struct {
		dir  Direction
		want Cell
	}{
		{Static, c},
		{Left, c.Left()},
		{Right, c.Right()},
		{Up, c.Up()},
		{Down, c.Down()},
		{Direction(99), c},
	}

	for _, tt := range tests {
		if got := c.Move(tt.dir); got != tt.want {
			t.Errorf("Move(%v) = %+v, want %+v", tt.dir, got, tt.want)
		}
	}
}

func TestCellMoveIsInvertible(t *testing.T) {
	opposite := map[Direction]Direction{
		Left:  Right,
		Right: Left,
		Up:    Down,
		Down:  Up,
	}

	c := NewCell(-4, 21)
	for d, back := range opposite {
		if got := c.Move(d).Move(back); got != c {
			t.Errorf("Move(%v).Move(%v) = %+v, want %+v", d, back, got, c)
		}
	}
}

func TestCellPixel(t *testing.T) {
	x, y := NewCell(5, 9).Pixel()
	if x != 10 || y != 18 {
		t.Errorf("Pixel() = (%d,%d), want (10,18)", x, y)
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{Static, "static"},
		{Left, "left"},
		{Right, "right"},
		{Up, "up"},
		{Down, "down"},
		{Direction(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.expected {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.expected)
		}
	}
}
