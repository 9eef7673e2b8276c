package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SquareToFENLetter returns the FEN letter for a square: uppercase for White,
// lowercase for Black. Empty squares return 0.
func SquareToFENLetter(sq chess.Square) byte {
	if sq.IsEmpty() {
		return 0
	}
	letter := sq.Piece.Letter()
	if sq.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewGameStateFromFEN creates a game from a FEN string. Only the piece
// placement and side to move are used; castling, en passant and clock
// fields are accepted but ignored. The side to move defaults to White.
func NewGameStateFromFEN(fen string, opts ...Option) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board, err := ParseBoard(parts[0])
	if err != nil {
		return nil, err
	}
	gs := newGameState(opts)
	gs.board = *board
	if err := parseSideToMove(gs, parts); err != nil {
		return nil, err
	}
	return gs, nil
}

// ParseBoard parses the piece placement field of a FEN string into a board.
func ParseBoard(placement string) (*chess.Board, error) {
	board := chess.NewBoard()
	if err := parsePiecePositions(board, placement); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Every rank must describe exactly eight squares.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    positions,
			Expected: "8 ranks",
			Got:      fmt.Sprintf("%d", len(ranks)),
		}
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece := chess.PieceFromLetter(byte(c))
				if piece == chess.Empty || c > unicode.MaxASCII {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(row, col, chess.NewSquare(colour, piece))
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(gs *GameState, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		gs.whiteToMove = true
	case "b":
		gs.whiteToMove = false
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// BoardToPlacement renders the piece placement field of a FEN string.
func BoardToPlacement(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// EPD returns the position as an EPD string: placement, side to move, and
// "- -" because castling and en passant are not tracked.
func (gs *GameState) EPD() string {
	var sb strings.Builder
	writePiecePositions(&sb, &gs.board)
	sb.WriteByte(' ')
	sb.WriteByte(gs.ToMove().Code())
	sb.WriteString(" - -")
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			sq := board.Get(row, col)
			if sq.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(SquareToFENLetter(sq))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
