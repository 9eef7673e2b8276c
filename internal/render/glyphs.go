package render

import "github.com/lgbarn/chessengine-go/internal/chess"

// Glyphs maps every square value to the text drawn for it. Each glyph
// occupies at most two terminal columns.
type Glyphs map[chess.Square]string

// LetterGlyphs draws pieces as their two-letter square codes.
var LetterGlyphs = Glyphs{
	chess.EmptySquare:     "--",
	chess.W(chess.Pawn):   "wp",
	chess.W(chess.Knight): "wN",
	chess.W(chess.Bishop): "wB",
	chess.W(chess.Rook):   "wR",
	chess.W(chess.Queen):  "wQ",
	chess.W(chess.King):   "wK",
	chess.B(chess.Pawn):   "bp",
	chess.B(chess.Knight): "bN",
	chess.B(chess.Bishop): "bB",
	chess.B(chess.Rook):   "bR",
	chess.B(chess.Queen):  "bQ",
	chess.B(chess.King):   "bK",
}

// UnicodeGlyphs draws pieces as chess symbols.
var UnicodeGlyphs = Glyphs{
	chess.EmptySquare:     "·",
	chess.W(chess.Pawn):   "♙",
	chess.W(chess.Knight): "♘",
	chess.W(chess.Bishop): "♗",
	chess.W(chess.Rook):   "♖",
	chess.W(chess.Queen):  "♕",
	chess.W(chess.King):   "♔",
	chess.B(chess.Pawn):   "♟",
	chess.B(chess.Knight): "♞",
	chess.B(chess.Bishop): "♝",
	chess.B(chess.Rook):   "♜",
	chess.B(chess.Queen):  "♛",
	chess.B(chess.King):   "♚",
}

// For returns the glyph for sq, falling back to the square code.
func (g Glyphs) For(sq chess.Square) string {
	if s, ok := g[sq]; ok {
		return s
	}
	return sq.String()
}
