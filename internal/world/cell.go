package world

// Cell is a single board coordinate. Y grows downwards.
type Cell struct {
	X, Y int
}

// NewCell creates a cell at the given position.
func NewCell(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Left returns the neighbour at x+1.
//
// Left and Right are mirrored relative to compass directions. Key bindings
// compensate for it (D maps to Left), so on screen the snake moves the way
// the player expects.
func (c Cell) Left() Cell {
	return Cell{X: c.X + 1, Y: c.Y}
}

// Right returns the neighbour at x-1.
func (c Cell) Right() Cell {
	return Cell{X: c.X - 1, Y: c.Y}
}

// Up returns the neighbour at y-1.
func (c Cell) Up() Cell {
	return Cell{X: c.X, Y: c.Y - 1}
}

// Down returns the neighbour at y+1.
func (c Cell) Down() Cell {
	return Cell{X: c.X, Y: c.Y + 1}
}

// Move returns the neighbour in direction d. Static returns c unchanged.
func (c Cell) Move(d Direction) Cell {
	switch d {
	case Left:
		return c.Left()
	case Right:
		return c.Right()
	case Up:
		return c.Up()
	case Down:
		return c.Down()
	default:
		return c
	}
}

// Pixel returns the top-left terminal position of the cell's block.
func (c Cell) Pixel() (int, int) {
	return c.X * PixelsPerCell, c.Y * PixelsPerCell
}
