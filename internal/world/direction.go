package world

// Direction is the heading of the snake's head.
type Direction int

const (
	// Static is only used before the first key press.
	Static Direction = iota
	Left
	Right
	Up
	Down
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Static:
		return "static"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}
