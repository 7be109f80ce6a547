package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snek/internal/input"
)

// Surface is the rendering and input collaborator a tick draws to.
type Surface interface {
	// Clear erases the previous frame.
	Clear()
	// DrawBlock draws one glyph at terminal coordinates.
	DrawBlock(x, y int, glyph rune, fg, bg tcell.Color)
	// PollKey returns the pending key press, or input.None.
	PollKey() input.Key
	// PrintCentered draws text horizontally centered on the given row.
	PrintCentered(row int, text string)
	// RequestQuit asks the host loop to stop after the current tick.
	RequestQuit()
}

// Host is a Surface that the frame loop can flush and query for shutdown.
type Host interface {
	Surface
	Show()
	QuitRequested() bool
}
