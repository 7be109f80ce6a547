// Package world provides the board geometry the snake moves on.
package world

const (
	// Board dimensions in logical cells.
	Width  = 48
	Height = 48

	// FoodSpan bounds food placement to [0,FoodSpan) on both axes.
	// This is a sub-region of the board, not the whole board.
	FoodSpan = 12

	// PixelsPerCell is the edge length, in terminal characters, of one cell.
	PixelsPerCell = 2
)
