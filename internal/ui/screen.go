// Package ui provides terminal rendering and keyboard input using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// eventBuffer bounds how many terminal events may queue between frames.
const eventBuffer = 64

// Screen wraps tcell.Screen with a simplified, non-blocking interface.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

// newScreen initializes s and starts pumping its events.
func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()

	scr := &Screen{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
	}
	go scr.pump()
	return scr, nil
}

// pump forwards terminal events until the screen is finalized.
func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		s.events <- ev
	}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// NextEvent returns the oldest queued event without waiting.
func (s *Screen) NextEvent() (tcell.Event, bool) {
	select {
	case ev, ok := <-s.events:
		return ev, ok
	default:
		return nil, false
	}
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
