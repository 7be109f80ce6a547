package gamedata

import "github.com/gdamore/tcell/v2"

// GlyphDef describes how one kind of cell is drawn.
type GlyphDef struct {
	Glyph      string `json:"glyph"`      // Single character drawn in every pixel of the block
	Foreground string `json:"foreground"` // Color name or hex code (e.g., "yellow", "#FFFF00")
	Background string `json:"background"` // Color name or hex code
}

// GlyphRune returns the glyph as a rune for rendering.
func (g *GlyphDef) GlyphRune() rune {
	if len(g.Glyph) == 0 {
		return '?'
	}
	return rune(g.Glyph[0])
}

// Colors returns the foreground and background as tcell colors.
// Unparseable colors fall back to white on black.
func (g *GlyphDef) Colors() (fg, bg tcell.Color) {
	fg, err := ParseColor(g.Foreground)
	if err != nil {
		fg = tcell.ColorWhite
	}
	bg, err = ParseColor(g.Background)
	if err != nil {
		bg = tcell.ColorBlack
	}
	return fg, bg
}

// Line is a row of centered text.
type Line struct {
	Row  int    `json:"row"`
	Text string `json:"text"`
}

// DeathScreen holds the text shown after the snake dies.
type DeathScreen struct {
	Title   Line   `json:"title"`
	Score   Line   `json:"score"` // Text is a format string taking the score
	Options []Line `json:"options"`
}

// Theme represents the structure of theme.json.
type Theme struct {
	Snake       GlyphDef    `json:"snake"`
	Food        GlyphDef    `json:"food"`
	DeathScreen DeathScreen `json:"deathScreen"`
}

// LoadTheme loads the theme from the embedded theme.json file.
func LoadTheme() (*Theme, error) {
	theme, err := Load[Theme]("theme.json")
	if err != nil {
		return nil, err
	}
	return &theme, nil
}
