package engine

import (
	"fmt"

	"github.com/lgbarn/chessengine-go/internal/chess"
)

// moveGenerator produces the candidate moves of the piece standing on from.
// Each generator returns its own slice; the caller concatenates them.
type moveGenerator interface {
	Moves(board *chess.Board, from chess.Coord) []Move
}

// Generators for each piece kind. Only pawns move; the rest are placeholders
// that contribute no candidates until their movement rules are written.
type (
	pawnMoves   struct{}
	knightMoves struct{}
	bishopMoves struct{}
	rookMoves   struct{}
	queenMoves  struct{}
	kingMoves   struct{}
)

// generatorFor returns the move generator for a piece kind.
// It panics on Empty or an unknown kind: only occupied squares are dispatched.
func generatorFor(piece chess.Piece) moveGenerator {
	switch piece {
	case chess.Pawn:
		return pawnMoves{}
	case chess.Knight:
		return knightMoves{}
	case chess.Bishop:
		return bishopMoves{}
	case chess.Rook:
		return rookMoves{}
	case chess.Queen:
		return queenMoves{}
	case chess.King:
		return kingMoves{}
	default:
		panic(fmt.Sprintf("engine: no move generator for %v", piece))
	}
}

// Moves generates pawn pushes and diagonal captures. The order is: one
// square forward, two squares forward from the home row, capture towards
// the higher column, capture towards the lower column.
// A pawn with no square in front of it (back rank) has no moves.
func (pawnMoves) Moves(board *chess.Board, from chess.Coord) []Move {
	pawn := board.At(from)
	dir := chess.ForwardOffset(pawn.Colour)
	enemy := pawn.Colour.Opposite()

	var moves []Move

	one := from.Offset(dir, 0)
	if sq, ok := board.Lookup(one); ok && sq.IsEmpty() {
		moves = append(moves, NewMove(from, one, board))

		two := from.Offset(2*dir, 0)
		if from.Row == chess.HomeRow(pawn.Colour) {
			if sq, ok := board.Lookup(two); ok && sq.IsEmpty() {
				moves = append(moves, NewMove(from, two, board))
			}
		}
	}

	for _, dc := range [...]int{1, -1} {
		target := from.Offset(dir, dc)
		if sq, ok := board.Lookup(target); ok && sq.Is(enemy) {
			moves = append(moves, NewMove(from, target, board))
		}
	}
	return moves
}

// Moves is not implemented: knights generate no candidates.
func (knightMoves) Moves(*chess.Board, chess.Coord) []Move { return nil }

// Moves is not implemented: bishops generate no candidates.
func (bishopMoves) Moves(*chess.Board, chess.Coord) []Move { return nil }

// Moves is not implemented: rooks generate no candidates.
func (rookMoves) Moves(*chess.Board, chess.Coord) []Move { return nil }

// Moves is not implemented: queens generate no candidates.
func (queenMoves) Moves(*chess.Board, chess.Coord) []Move { return nil }

// Moves is not implemented: kings generate no candidates.
func (kingMoves) Moves(*chess.Board, chess.Coord) []Move { return nil }
