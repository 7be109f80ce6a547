// Package game provides the tick-driven snake game and its host loop.
package game

// Mode represents the top-level game mode.
type Mode int

const (
	// ModePlaying is the default mode where the snake moves and eats.
	ModePlaying Mode = iota
	// ModeDead shows the death screen until the player restarts or quits.
	ModeDead
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeDead:
		return "dead"
	default:
		return "unknown"
	}
}
