package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessengine-go/internal/chess"
)

// ParseDiagram parses a board written in the format produced by
// chess.Board.String: eight lines of eight square codes, rank 8 first.
// Blank lines and surrounding whitespace are ignored.
func ParseDiagram(diagram string) (chess.Board, bool) {
	var board chess.Board
	row := 0
	for _, line := range strings.Split(diagram, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if row >= chess.BoardSize || len(fields) != chess.BoardSize {
			return chess.Board{}, false
		}
		for col, code := range fields {
			sq, ok := chess.ParseSquare(code)
			if !ok {
				return chess.Board{}, false
			}
			board.Set(row, col, sq)
		}
		row++
	}
	if row != chess.BoardSize {
		return chess.Board{}, false
	}
	return board, true
}

// MustParseDiagram parses a board diagram and calls t.Fatal if it is malformed.
func MustParseDiagram(t testing.TB, diagram string) chess.Board {
	t.Helper()
	board, ok := ParseDiagram(diagram)
	if !ok {
		t.Fatalf("malformed board diagram:\n%s", diagram)
	}
	return board
}
