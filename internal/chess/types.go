// Package chess provides core chess types: colours, pieces, squares and coordinates.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Code returns the single lowercase letter used for the colour in square codes.
func (c Colour) Code() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Piece represents a chess piece type.
type Piece int

const (
	Empty Piece = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{'-', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts a piece letter (either case) to a piece type.
// Unknown letters return Empty.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return Empty
	}
}

// Square is the content of one board cell: either empty or one piece of one colour.
// The zero value is an empty square.
type Square struct {
	Colour Colour
	Piece  Piece
}

// EmptySquare is the canonical empty square.
var EmptySquare = Square{}

// NewSquare creates an occupied square. Passing Empty returns EmptySquare.
func NewSquare(colour Colour, piece Piece) Square {
	if piece == Empty {
		return EmptySquare
	}
	return Square{Colour: colour, Piece: piece}
}

// W creates a square holding a white piece.
func W(piece Piece) Square {
	return NewSquare(White, piece)
}

// B creates a square holding a black piece.
func B(piece Piece) Square {
	return NewSquare(Black, piece)
}

// IsEmpty returns true if no piece occupies the square.
func (s Square) IsEmpty() bool {
	return s.Piece == Empty
}

// Is returns true if the square holds a piece of the given colour.
func (s Square) Is(colour Colour) bool {
	return !s.IsEmpty() && s.Colour == colour
}

// String returns the two character square code, e.g. "wp", "bN" or "--".
// Pawns use a lowercase letter; all other pieces are uppercase.
func (s Square) String() string {
	if s.IsEmpty() {
		return "--"
	}
	letter := s.Piece.Letter()
	if s.Piece == Pawn {
		letter = 'p'
	}
	return string([]byte{s.Colour.Code(), letter})
}

// ParseSquare parses a two character square code as produced by Square.String.
func ParseSquare(code string) (Square, bool) {
	if code == "--" {
		return EmptySquare, true
	}
	if len(code) != 2 {
		return EmptySquare, false
	}
	var colour Colour
	switch code[0] {
	case 'w':
		colour = White
	case 'b':
		colour = Black
	default:
		return EmptySquare, false
	}
	piece := PieceFromLetter(code[1])
	if piece == Empty {
		return EmptySquare, false
	}
	return NewSquare(colour, piece), true
}

// Rank represents a chess rank character - '1' to '8'.
type Rank byte

// Col represents a chess file character - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// RankToRow converts a rank character to a board row (rank 8 is row 0).
// It returns -1 for characters outside '1'-'8'.
func RankToRow(rank Rank) int {
	if rank >= FirstRank && rank <= LastRank {
		return int(LastRank - rank)
	}
	return -1
}

// ColToIndex converts a file character to a board column.
// It returns -1 for characters outside 'a'-'h'.
func ColToIndex(col Col) int {
	if col >= FirstCol && col <= LastCol {
		return int(col - ColBase)
	}
	return -1
}

// ToRank converts a board row back to a rank character.
func ToRank(row int) Rank {
	return Rank(LastRank - row)
}

// ToCol converts a board column back to a file character.
func ToCol(col int) Col {
	return Col(ColBase + col)
}

// ForwardOffset returns the row delta of a pawn advance: -1 for White, +1 for Black.
func ForwardOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRow returns the row a pawn of the given colour starts on.
func HomeRow(colour Colour) int {
	if colour == White {
		return 6
	}
	return 1
}

// Coord is a board position addressed by row (0 = rank 8) and column (0 = file a).
type Coord struct {
	Row int
	Col int
}

// OnBoard returns true if both row and column are in 0..7.
func (c Coord) OnBoard() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Offset returns the coordinate shifted by the given row and column deltas.
func (c Coord) Offset(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String returns the algebraic name of the coordinate, e.g. "e4".
func (c Coord) String() string {
	if !c.OnBoard() {
		return "??"
	}
	return string([]byte{byte(ToCol(c.Col)), byte(ToRank(c.Row))})
}

// ParseCoord parses an algebraic square name such as "e4".
func ParseCoord(s string) (Coord, bool) {
	if len(s) != 2 {
		return Coord{}, false
	}
	col := ColToIndex(Col(s[0] | 0x20))
	row := RankToRow(Rank(s[1]))
	if col < 0 || row < 0 {
		return Coord{}, false
	}
	return Coord{Row: row, Col: col}, true
}
