package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snek/internal/input"
)

// Renderer draws game frames and reads keys. It satisfies game.Host.
type Renderer struct {
	screen *Screen
	quit   bool
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Clear erases the previous frame.
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// DrawBlock draws one glyph at terminal coordinates.
func (r *Renderer) DrawBlock(x, y int, glyph rune, fg, bg tcell.Color) {
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	r.screen.SetContent(x, y, glyph, style)
}

// PrintCentered draws text centered on row.
func (r *Renderer) PrintCentered(row int, text string) {
	width, _ := r.screen.Size()
	runes := []rune(text)
	x := (width - len(runes)) / 2
	if x < 0 {
		x = 0
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range runes {
		r.screen.SetContent(x+i, row, ch, style)
	}
}

// PollKey returns the first pending key press, or input.None.
// Resize events queued ahead of it are handled on the way.
func (r *Renderer) PollKey() input.Key {
	for {
		ev, ok := r.screen.NextEvent()
		if !ok {
			return input.None
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if isInterrupt(ev) {
				r.quit = true
				return input.None
			}
			if k, ok := translateKey(ev); ok {
				return k
			}
		}
	}
}

// RequestQuit asks the host loop to stop.
func (r *Renderer) RequestQuit() {
	r.quit = true
}

// QuitRequested reports whether the game or the terminal asked to stop.
func (r *Renderer) QuitRequested() bool {
	return r.quit
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() {
	r.screen.Show()
}

// isInterrupt reports whether ev should stop the program regardless of mode.
func isInterrupt(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC
}

// translateKey maps a typed character to a game key.
func translateKey(ev *tcell.EventKey) (input.Key, bool) {
	if ev.Key() != tcell.KeyRune {
		return input.None, false
	}
	return input.FromRune(ev.Rune()), true
}
