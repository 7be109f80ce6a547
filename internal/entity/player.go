// Package entity provides the snake and the food it chases.
package entity

import (
	"github.com/samdwyer/snek/internal/input"
	"github.com/samdwyer/snek/internal/world"
)

// Player is the snake: a head plus an ordered tail.
// Tail[0] is the segment nearest the head, the last element is the tip.
type Player struct {
	Head      world.Cell
	Tail      []world.Cell
	Direction world.Direction
}

// NewPlayer creates a motionless snake with no tail at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{
		Head:      world.NewCell(x, y),
		Tail:      make([]world.Cell, 0),
		Direction: world.Static,
	}
}

// UpdateDirection steers the snake from the latest key press.
// Unrecognised keys are ignored. Reversing onto the tail is allowed.
func (p *Player) UpdateDirection(key input.Key) {
	switch key {
	case input.D:
		p.Direction = world.Left
	case input.A:
		p.Direction = world.Right
	case input.W:
		p.Direction = world.Up
	case input.S:
		p.Direction = world.Down
	}
}

// UpdatePosition advances the snake by one cell.
//
// The tail only follows the head once it has at least two segments; a single
// segment stays where it was grown.
func (p *Player) UpdatePosition() {
	if len(p.Tail) > 1 {
		// Old head becomes the new front segment, the tip is dropped.
		copy(p.Tail[1:], p.Tail[:len(p.Tail)-1])
		p.Tail[0] = p.Head
	}

	p.Head = p.Head.Move(p.Direction)
}

// IsOutOfBounds reports whether the head has left the playable region.
// The region is [0, Width-1) x [0, Height-1).
func (p *Player) IsOutOfBounds() bool {
	return p.Head.X+1 <= 0 ||
		p.Head.X+1 >= world.Width ||
		p.Head.Y+1 <= 0 ||
		p.Head.Y+1 >= world.Height
}

// Grow appends a segment one step beyond the tip, in the current direction.
// A motionless snake cannot grow; Grow returns false in that case.
func (p *Player) Grow() bool {
	if p.Direction == world.Static {
		return false
	}

	last := p.Head
	if len(p.Tail) > 0 {
		last = p.Tail[len(p.Tail)-1]
	}
	p.Tail = append(p.Tail, last.Move(p.Direction))
	return true
}

// Length returns the number of tail segments.
func (p *Player) Length() int {
	return len(p.Tail)
}

// Segments returns the head followed by every tail segment.
func (p *Player) Segments() []world.Cell {
	cells := make([]world.Cell, 0, len(p.Tail)+1)
	cells = append(cells, p.Head)
	return append(cells, p.Tail...)
}
