package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/engine"
)

// JSONGame represents a game state in JSON format.
type JSONGame struct {
	Session    string     `json:"session,omitempty"`
	InitialFEN string     `json:"initialFEN,omitempty"`
	Moves      []JSONMove `json:"moves"`
	PlyCount   int        `json:"plyCount"`
	ToMove     string     `json:"toMove"` // "white" or "black"
	EPD        string     `json:"epd"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	Coordinate string `json:"coordinate"`
	ID         int    `json:"id"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
}

// GameToJSON converts a game state to JSON form. initialFEN is recorded
// only when the game did not start from the standard position.
func GameToJSON(gs *engine.GameState, initialFEN string) *JSONGame {
	log := gs.MoveLog()
	jg := &JSONGame{
		Moves:    convertMoveList(log),
		PlyCount: len(log),
		ToMove:   colourName(gs.ToMove()),
		EPD:      gs.EPD(),
	}
	if initialFEN != "" && initialFEN != engine.InitialFEN {
		jg.InitialFEN = initialFEN
	}
	return jg
}

// convertMoveList converts a move log to JSON form. Move numbers start at
// one and advance after each Black move.
func convertMoveList(moves []engine.Move) []JSONMove {
	result := make([]JSONMove, 0, len(moves))
	moveNum := 1
	for i, m := range moves {
		jm := JSONMove{
			Ply:        i + 1,
			MoveNumber: moveNum,
			Color:      colourName(m.PieceMoved().Colour),
			SAN:        m.RealChessNotation(),
			Coordinate: m.ChessNotation(),
			ID:         m.ID(),
			From:       m.From().String(),
			To:         m.To().String(),
			Piece:      strings.ToLower(m.PieceMoved().Piece.String()),
		}
		if m.IsCapture() {
			jm.Captured = strings.ToLower(m.PieceCaptured().Piece.String())
		}
		result = append(result, jm)

		if m.PieceMoved().Colour == chess.Black {
			moveNum++
		}
	}
	return result
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// WriteGameJSON writes a game as indented JSON followed by a newline.
func WriteGameJSON(w io.Writer, game *JSONGame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(game)
}
