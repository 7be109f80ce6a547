package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts a color name ("yellow") or hex code ("#FFFF00", "FFFF00")
// to a tcell.Color.
func ParseColor(s string) (tcell.Color, error) {
	if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	return ParseHexColor(s)
}

// ParseHexColor converts a six digit hex color string to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
