// Package input defines the key codes the terminal surface hands to the game.
package input

import "unicode"

// Key is a normalised key press. Letters are always upper case.
type Key rune

const (
	// None means no key was pressed this frame.
	None Key = 0

	W Key = 'W'
	A Key = 'A'
	S Key = 'S'
	D Key = 'D'
	P Key = 'P'
	Q Key = 'Q'
)

// FromRune normalises a typed character into a Key.
func FromRune(r rune) Key {
	return Key(unicode.ToUpper(r))
}

// String returns the key as typed.
func (k Key) String() string {
	if k == None {
		return "none"
	}
	return string(rune(k))
}
