package engine

import (
	"strings"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/errors"
)

// Move is one state transition: a piece travelling from one square to another.
// The moved and captured pieces are snapshots of the board taken when the
// move was constructed. A Move cannot be changed after construction.
type Move struct {
	from     chess.Coord
	to       chess.Coord
	moved    chess.Square
	captured chess.Square
}

// NewMove builds a move between two on-board coordinates, reading the moved
// and captured pieces from board. The captured piece is empty when the
// destination is empty.
func NewMove(from, to chess.Coord, board *chess.Board) Move {
	return Move{
		from:     from,
		to:       to,
		moved:    board.At(from),
		captured: board.At(to),
	}
}

// ParseMove converts coordinate text such as "e2e4", "e2 e4" or "e2-e4"
// into a move against board.
func ParseMove(text string, board *chess.Board) (Move, error) {
	s := strings.Join(strings.Fields(text), "")
	s = strings.Replace(s, "-", "", 1)
	if len(s) != 4 {
		return Move{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    text,
			Expected: "two squares like e2e4",
		}
	}

	from, ok := chess.ParseCoord(s[:2])
	if !ok {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Column: 1, Got: s[:2]}
	}
	to, ok := chess.ParseCoord(s[2:])
	if !ok {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: text, Column: 3, Got: s[2:]}
	}
	return NewMove(from, to, board), nil
}

// From returns the start square.
func (m Move) From() chess.Coord { return m.from }

// To returns the destination square.
func (m Move) To() chess.Coord { return m.to }

// PieceMoved returns the piece that stood on the start square at construction.
func (m Move) PieceMoved() chess.Square { return m.moved }

// PieceCaptured returns what stood on the destination at construction.
func (m Move) PieceCaptured() chess.Square { return m.captured }

// IsCapture returns true if the destination was occupied at construction.
func (m Move) IsCapture() bool {
	return !m.captured.IsEmpty()
}

// ID encodes the coordinates as startRow*1000 + startCol*100 + endRow*10 + endCol.
// Each coordinate is a single digit, so distinct moves have distinct IDs.
func (m Move) ID() int {
	return m.from.Row*1000 + m.from.Col*100 + m.to.Row*10 + m.to.Col
}

// Equal reports whether two moves connect the same squares.
// The piece snapshots are not compared.
func (m Move) Equal(other Move) bool {
	return m.ID() == other.ID()
}

// ChessNotation returns the start and destination squares, e.g. "e2e4".
func (m Move) ChessNotation() string {
	return m.from.String() + m.to.String()
}

// RealChessNotation returns a simplified algebraic form of the move:
// "e4" and "Nf3" for quiet moves, "exd5" and "Nxf3" for captures.
// There is no disambiguation and no check, castling or promotion marks.
func (m Move) RealChessNotation() string {
	var sb strings.Builder
	pawn := m.moved.Piece == chess.Pawn

	switch {
	case pawn && m.IsCapture():
		sb.WriteByte(byte(chess.ToCol(m.from.Col)))
		sb.WriteByte('x')
	case pawn:
	case m.IsCapture():
		sb.WriteByte(m.moved.Piece.Letter())
		sb.WriteByte('x')
	default:
		sb.WriteByte(m.moved.Piece.Letter())
	}
	sb.WriteString(m.to.String())
	return sb.String()
}

// String returns the coordinate notation of the move.
func (m Move) String() string {
	return m.ChessNotation()
}

// ContainsMove reports whether moves holds a move equal to m.
func ContainsMove(moves []Move, m Move) bool {
	return indexOfMove(moves, m) >= 0
}

// indexOfMove returns the index of the first move equal to m, or -1.
func indexOfMove(moves []Move, m Move) int {
	for i := range moves {
		if moves[i].Equal(m) {
			return i
		}
	}
	return -1
}
