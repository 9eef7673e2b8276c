// Package render draws a board as terminal text.
package render

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/config"
)

// cellWidth is the number of terminal columns a square occupies.
const cellWidth = 4

// Renderer draws boards with a fixed glyph set and theme.
type Renderer struct {
	glyphs      Glyphs
	theme       Theme
	colour      bool
	coordinates bool
}

// New creates a renderer from the display settings.
func New(cfg config.Display) *Renderer {
	glyphs := LetterGlyphs
	if cfg.Glyphs == config.GlyphsUnicode {
		glyphs = UnicodeGlyphs
	}
	return &Renderer{
		glyphs:      glyphs,
		theme:       DefaultTheme,
		colour:      cfg.Colour,
		coordinates: cfg.Coordinates,
	}
}

// WithTheme returns a copy of r drawing with theme t.
func (r *Renderer) WithTheme(t Theme) *Renderer {
	out := *r
	out.theme = t
	return &out
}

// Render writes board to w, rank 8 first. Squares in marked are
// highlighted, or bracketed when colour is off.
func (r *Renderer) Render(w io.Writer, board *chess.Board, marked ...chess.Coord) error {
	marks := make(map[chess.Coord]bool, len(marked))
	for _, c := range marked {
		marks[c] = true
	}

	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if r.coordinates {
			sb.WriteString(r.paint(string(rune(chess.ToRank(row))), r.theme.Label))
			sb.WriteByte(' ')
		}
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteString(r.cell(row, col, board.Get(row, col), marks[chess.Coord{Row: row, Col: col}]))
		}
		sb.WriteByte('\n')
	}

	if r.coordinates {
		var files strings.Builder
		files.WriteString("  ")
		for col := 0; col < chess.BoardSize; col++ {
			files.WriteByte(' ')
			files.WriteByte(byte(chess.ToCol(col)))
			files.WriteString(strings.Repeat(" ", cellWidth-2))
		}
		sb.WriteString(r.paint(strings.TrimRight(files.String(), " "), r.theme.Label))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// cell returns the text for one square, padded to cellWidth.
func (r *Renderer) cell(row, col int, sq chess.Square, marked bool) string {
	glyph := r.glyphs.For(sq)
	if pad := 2 - utf8.RuneCountInString(glyph); pad > 0 {
		glyph += strings.Repeat(" ", pad)
	}

	if !r.coloured() {
		if marked {
			return "[" + glyph + "]"
		}
		return " " + glyph + " "
	}

	attrs := []color.Attribute{r.theme.squareBg(row, col, marked)}
	if !sq.IsEmpty() {
		attrs = append(attrs, r.theme.pieceFg(sq.Colour))
	}
	return r.paint(" "+glyph+" ", attrs...)
}

func (r *Renderer) coloured() bool {
	return r.colour && !color.NoColor
}

func (r *Renderer) paint(s string, attrs ...color.Attribute) string {
	if !r.coloured() {
		return s
	}
	return color.New(attrs...).Sprint(s)
}
