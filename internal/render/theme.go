package render

import (
	"github.com/fatih/color"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/config"
)

// Theme holds the terminal attributes used to colour the board.
// Themes should stay within the 16 basic ANSI colours so they render on
// any terminal.
type Theme struct {
	SquareLight color.Attribute
	SquareDark  color.Attribute
	SquareHigh  color.Attribute
	White       color.Attribute
	Black       color.Attribute
	Label       color.Attribute
}

// DefaultTheme is the theme used when none is given.
var DefaultTheme = Theme{
	SquareLight: color.BgYellow,
	SquareDark:  color.BgGreen,
	SquareHigh:  color.BgCyan,
	White:       color.FgHiWhite,
	Black:       color.FgBlack,
	Label:       color.FgHiBlack,
}

// ContrastTheme uses bright square colours and coloured pieces for
// terminals where the default palette is hard to read.
var ContrastTheme = Theme{
	SquareLight: color.BgHiWhite,
	SquareDark:  color.BgHiBlack,
	SquareHigh:  color.BgHiYellow,
	White:       color.FgRed,
	Black:       color.FgBlue,
	Label:       color.FgWhite,
}

// ThemeFor returns the theme with the given config name. Unknown names get
// DefaultTheme.
func ThemeFor(name string) Theme {
	if name == config.ThemeContrast {
		return ContrastTheme
	}
	return DefaultTheme
}

// squareBg returns the background for the square at row, col. a8 (row 0,
// col 0) is a light square.
func (t Theme) squareBg(row, col int, marked bool) color.Attribute {
	switch {
	case marked:
		return t.SquareHigh
	case (row+col)%2 == 0:
		return t.SquareLight
	default:
		return t.SquareDark
	}
}

// pieceFg returns the foreground for a piece of the given colour.
func (t Theme) pieceFg(c chess.Colour) color.Attribute {
	if c == chess.White {
		return t.White
	}
	return t.Black
}
