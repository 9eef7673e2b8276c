package output

import (
	"io"

	"github.com/lgbarn/chessengine-go/internal/config"
	"github.com/lgbarn/chessengine-go/internal/engine"
)

// GameWriter is the interface for writing a game's move log to output.
// Different implementations handle different output formats.
type GameWriter interface {
	// WriteGame writes the move log of gs.
	WriteGame(gs *engine.GameState) error
}

// TextWriter writes move logs as numbered, line-wrapped move text.
type TextWriter struct {
	w             io.Writer
	notation      string
	maxLineLength int
}

// NewTextWriter creates a text writer using the display settings.
func NewTextWriter(w io.Writer, cfg config.Display) *TextWriter {
	return &TextWriter{
		w:             w,
		notation:      cfg.Notation,
		maxLineLength: cfg.MaxLineLength,
	}
}

// WriteGame writes the move text of gs. An empty log writes nothing.
func (tw *TextWriter) WriteGame(gs *engine.GameState) error {
	return WriteMoveText(tw.w, gs.MoveLog(), tw.notation, tw.maxLineLength)
}

// JSONWriter writes each game immediately as one JSON document.
type JSONWriter struct {
	w          io.Writer
	session    string
	initialFEN string
}

// NewJSONWriter creates a JSON writer. session and initialFEN are copied
// into every document; either may be empty.
func NewJSONWriter(w io.Writer, session, initialFEN string) *JSONWriter {
	return &JSONWriter{
		w:          w,
		session:    session,
		initialFEN: initialFEN,
	}
}

// WriteGame writes gs as JSON.
func (jw *JSONWriter) WriteGame(gs *engine.GameState) error {
	jg := GameToJSON(gs, jw.initialFEN)
	jg.Session = jw.session
	return WriteGameJSON(jw.w, jg)
}

var (
	_ GameWriter = (*TextWriter)(nil)
	_ GameWriter = (*JSONWriter)(nil)
)
