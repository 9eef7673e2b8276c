package chess

import "strings"

// Board is an 8x8 grid of squares. Row 0 is rank 8 and column 0 is file a.
// Board is a plain value: assigning it copies the position and == compares
// two positions square by square.
type Board struct {
	Squares [BoardSize][BoardSize]Square
}

// backRank lists the pieces on the first rank from file a to file h.
var backRank = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Square{}
}

// Get returns the square at the given row and column.
func (b *Board) Get(row, col int) Square {
	return b.Squares[row][col]
}

// Set places a square value at the given row and column.
func (b *Board) Set(row, col int, sq Square) {
	if sq.IsEmpty() {
		sq = EmptySquare
	}
	b.Squares[row][col] = sq
}

// At returns the square at the given coordinate.
func (b *Board) At(c Coord) Square {
	return b.Get(c.Row, c.Col)
}

// Put places a square value at the given coordinate.
func (b *Board) Put(c Coord, sq Square) {
	b.Set(c.Row, c.Col, sq)
}

// Lookup returns the square at c and whether c is on the board.
// Off-board coordinates report an empty square.
func (b *Board) Lookup(c Coord) (Square, bool) {
	if !c.OnBoard() {
		return EmptySquare, false
	}
	return b.At(c), true
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Count returns the number of squares holding the given square value.
func (b *Board) Count(sq Square) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == sq {
				n++
			}
		}
	}
	return n
}

// String renders the board one row per line using square codes, row 0 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.Squares[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
