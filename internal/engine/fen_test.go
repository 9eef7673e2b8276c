package engine

import (
	"testing"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/errors"
	"github.com/lgbarn/chessengine-go/internal/testutil"
)

func TestNewGameStateFromFEN(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantWhite bool
		checkFn   func(chess.Board) bool
	}{
		{
			name:      "initial position",
			fen:       InitialFEN,
			wantWhite: true,
			checkFn: func(b chess.Board) bool {
				return b == *chess.NewInitialBoard()
			},
		},
		{
			name:      "after 1.e4",
			fen:       "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			wantWhite: false,
			checkFn: func(b chess.Board) bool {
				return b.At(sq("e4")) == chess.W(chess.Pawn) &&
					b.At(sq("e2")).IsEmpty()
			},
		},
		{
			name:      "sicilian defense",
			fen:       "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			wantWhite: true,
			checkFn: func(b chess.Board) bool {
				return b.At(sq("c5")) == chess.B(chess.Pawn) &&
					b.At(sq("e4")) == chess.W(chess.Pawn)
			},
		},
		{
			name:      "placement only defaults to white",
			fen:       "4k3/8/8/8/8/8/8/4K3",
			wantWhite: true,
			checkFn: func(b chess.Board) bool {
				return b.At(sq("e8")) == chess.B(chess.King) &&
					b.At(sq("e1")) == chess.W(chess.King) &&
					b.Count(chess.EmptySquare) == 62
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, err := NewGameStateFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewGameStateFromFEN(%q) failed: %v", tt.fen, err)
			}
			if gs.WhiteToMove() != tt.wantWhite {
				t.Errorf("WhiteToMove() = %v, want %v", gs.WhiteToMove(), tt.wantWhite)
			}
			if gs.Ply() != 0 {
				t.Errorf("Ply() = %d, want 0", gs.Ply())
			}
			if !tt.checkFn(gs.Board()) {
				b := gs.Board()
				t.Errorf("board check failed:\n%s", b.String())
			}
		})
	}
}

func TestNewGameStateFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too few ranks", "8/8/8/8/8/8/8 w"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w"},
		{"short rank", "7/8/8/8/8/8/8/8 w"},
		{"long rank", "9/8/8/8/8/8/8/8 w"},
		{"overflowing rank", "8p/8/8/8/8/8/8/8 w"},
		{"bad piece", "rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"},
		{"zero skip", "08/8/8/8/8/8/8/8 w"},
		{"bad side", "8/8/8/8/8/8/8/8 x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, err := NewGameStateFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
			if gs != nil {
				t.Errorf("NewGameStateFromFEN(%q) returned a game with an error", tt.fen)
			}
		})
	}
}

func TestEPD(t *testing.T) {
	gs := NewGameState()
	if got, want := gs.EPD(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - -"; got != want {
		t.Errorf("EPD() = %q, want %q", got, want)
	}

	playLine(t, gs, "e2e4")
	if got, want := gs.EPD(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - -"; got != want {
		t.Errorf("EPD() after e4 = %q, want %q", got, want)
	}
}

func TestPlacementRoundTrip(t *testing.T) {
	placements := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R",
		"8/8/8/8/8/8/8/8",
		"P3k3/8/8/8/8/8/8/p3K3",
	}

	for _, p := range placements {
		t.Run(p, func(t *testing.T) {
			board, err := ParseBoard(p)
			testutil.AssertNoError(t, err)
			if got := BoardToPlacement(board); got != p {
				t.Errorf("BoardToPlacement() = %q, want %q", got, p)
			}
		})
	}

	if _, err := ParseBoard("8/8"); err == nil {
		t.Error("ParseBoard(8/8) succeeded, want error")
	}
}

func TestSquareToFENLetter(t *testing.T) {
	tests := []struct {
		sq   chess.Square
		want byte
	}{
		{chess.W(chess.King), 'K'},
		{chess.B(chess.King), 'k'},
		{chess.W(chess.Pawn), 'P'},
		{chess.B(chess.Knight), 'n'},
		{chess.EmptySquare, 0},
	}
	for _, tt := range tests {
		if got := SquareToFENLetter(tt.sq); got != tt.want {
			t.Errorf("SquareToFENLetter(%v) = %q, want %q", tt.sq, got, tt.want)
		}
	}
}
