package engine

import (
	"sort"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/testutil"
)

// Positions without check, pins, en passant or promotion, where pseudo-legal
// pawn moves and legal pawn moves coincide.
var crossCheckPositions = []string{
	InitialFEN,
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
	"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w - - 0 2",
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b - - 4 4",
	"4k3/8/8/3p1p2/2P1P3/8/8/4K3 w - - 0 1",
	"4k3/8/8/3p1p2/2P1P3/8/8/4K3 b - - 0 1",
	"4k3/1p6/P1P5/8/8/8/8/4K3 b - - 0 1",
}

// fromNotnilSquare converts a square index (a1 = 0) to a board coordinate.
func fromNotnilSquare(s nchess.Square) chess.Coord {
	return chess.Coord{Row: 7 - int(s.Rank()), Col: int(s.File())}
}

// referencePawnMoves returns the legal pawn moves of a full rules engine in
// coordinate notation, sorted.
func referencePawnMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := nchess.FEN(fen)
	if err != nil {
		t.Fatalf("reference engine rejected %q: %v", fen, err)
	}
	game := nchess.NewGame(opt)
	board := game.Position().Board()

	var out []string
	for _, m := range game.ValidMoves() {
		if board.Piece(m.S1()).Type() != nchess.Pawn {
			continue
		}
		from, to := fromNotnilSquare(m.S1()), fromNotnilSquare(m.S2())
		out = append(out, from.String()+to.String())
	}
	sort.Strings(out)
	return out
}

func TestPawnMovesMatchReferenceEngine(t *testing.T) {
	for _, fen := range crossCheckPositions {
		t.Run(fen, func(t *testing.T) {
			gs := mustFEN(t, fen)

			var got []string
			for _, m := range gs.ValidMoves() {
				got = append(got, m.ChessNotation())
			}
			sort.Strings(got)

			testutil.AssertEqual(t, got, referencePawnMoves(t, fen))
		})
	}
}

func TestPawnNotationMatchesReferenceEngine(t *testing.T) {
	for _, fen := range crossCheckPositions {
		t.Run(fen, func(t *testing.T) {
			opt, err := nchess.FEN(fen)
			if err != nil {
				t.Fatalf("reference engine rejected %q: %v", fen, err)
			}
			game := nchess.NewGame(opt)
			pos := game.Position()

			want := make(map[int]string)
			for _, m := range game.ValidMoves() {
				if pos.Board().Piece(m.S1()).Type() != nchess.Pawn {
					continue
				}
				key := NewMove(fromNotnilSquare(m.S1()), fromNotnilSquare(m.S2()), chess.NewBoard()).ID()
				want[key] = nchess.AlgebraicNotation{}.Encode(pos, m)
			}

			gs := mustFEN(t, fen)
			for _, m := range gs.ValidMoves() {
				ref, ok := want[m.ID()]
				if !ok {
					t.Errorf("%v not generated by the reference engine", m)
					continue
				}
				if got := m.RealChessNotation(); got != ref {
					t.Errorf("RealChessNotation(%v) = %q, reference %q", m, got, ref)
				}
			}
		})
	}
}
