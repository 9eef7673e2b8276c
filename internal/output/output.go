// Package output provides move-list output in text and JSON form.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/config"
	"github.com/lgbarn/chessengine-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
// The first write error is kept and later writes are skipped.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, preceded by a space or a line break as needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.emit("\n")
			o.lineLength = 0
			o.needsSpace = false
		} else {
			o.emit(" ")
			o.lineLength++
		}
	}

	o.emit(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.emit("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first error returned by the underlying writer.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) emit(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// FormatMove renders a move in the named notation. Unknown names fall back
// to algebraic notation.
func FormatMove(m engine.Move, notation string) string {
	if notation == config.NotationCoordinate {
		return m.ChessNotation()
	}
	return m.RealChessNotation()
}

// WriteMoveText writes moves as numbered move text, e.g. "1. e4 e5 2. d4",
// wrapping lines at maxLineLength. A list that starts with a Black move
// opens with "1...". The text ends with a newline unless moves is empty.
func WriteMoveText(w io.Writer, moves []engine.Move, notation string, maxLineLength int) error {
	if len(moves) == 0 {
		return nil
	}

	ow := NewOutputWriter(w, maxLineLength)
	moveNum := 1
	isWhite := moves[0].PieceMoved().Colour == chess.White

	for i, m := range moves {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}

		ow.Write(FormatMove(m, notation))

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	ow.NewLine()
	return ow.Err()
}
