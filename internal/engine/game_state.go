// Package engine holds the authoritative state of a chess game: the board,
// the side to move and a reversible move log, plus candidate move generation.
//
// A GameState is owned by a single consumer and is not safe for concurrent use.
package engine

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/errors"
)

// GameState is the board, turn flag and move history of one game session.
type GameState struct {
	board       chess.Board
	whiteToMove bool
	moveLog     []Move
	logger      *zap.Logger
}

// Option configures a GameState.
type Option func(*GameState)

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(gs *GameState) {
		if logger != nil {
			gs.logger = logger
		}
	}
}

// NewGameState creates a game in the standard starting position with White to move.
func NewGameState(opts ...Option) *GameState {
	gs := newGameState(opts)
	gs.board.SetupInitialPosition()
	return gs
}

func newGameState(opts []Option) *GameState {
	gs := &GameState{
		whiteToMove: true,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(gs)
	}
	return gs
}

// Board returns a copy of the current board.
func (gs *GameState) Board() chess.Board {
	return gs.board
}

// WhiteToMove returns true if White is the side to move.
func (gs *GameState) WhiteToMove() bool {
	return gs.whiteToMove
}

// ToMove returns the colour of the side to move.
func (gs *GameState) ToMove() chess.Colour {
	if gs.whiteToMove {
		return chess.White
	}
	return chess.Black
}

// MoveLog returns a copy of the applied moves, oldest first.
func (gs *GameState) MoveLog() []Move {
	log := make([]Move, len(gs.moveLog))
	copy(log, gs.moveLog)
	return log
}

// Ply returns the number of moves in the log.
func (gs *GameState) Ply() int {
	return len(gs.moveLog)
}

// MakeMove applies m: the start square is emptied, the destination receives
// the moved piece, m is appended to the log and the turn passes.
// No legality check is made; callers check membership in ValidMoves first.
func (gs *GameState) MakeMove(m Move) {
	gs.board.Put(m.from, chess.EmptySquare)
	gs.board.Put(m.to, m.moved)
	gs.moveLog = append(gs.moveLog, m)
	gs.whiteToMove = !gs.whiteToMove

	gs.logger.Debug("move made",
		zap.String("move", m.ChessNotation()),
		zap.Int("ply", len(gs.moveLog)),
		zap.Bool("white_to_move", gs.whiteToMove))
}

// UndoMove takes back the last move, restoring both squares it touched and
// the turn. It returns the move taken back, or false if the log is empty,
// in which case nothing changes.
func (gs *GameState) UndoMove() (Move, bool) {
	n := len(gs.moveLog)
	if n == 0 {
		return Move{}, false
	}

	m := gs.moveLog[n-1]
	gs.moveLog = gs.moveLog[:n-1]
	gs.board.Put(m.from, m.moved)
	gs.board.Put(m.to, m.captured)
	gs.whiteToMove = !gs.whiteToMove

	gs.logger.Debug("move undone",
		zap.String("move", m.ChessNotation()),
		zap.Int("ply", len(gs.moveLog)),
		zap.Bool("white_to_move", gs.whiteToMove))
	return m, true
}

// ValidMoves returns the moves the side to move may play.
// There is no check detection, so this is every candidate from
// AllPossibleMoves; filtering for king safety belongs here.
func (gs *GameState) ValidMoves() []Move {
	return gs.AllPossibleMoves()
}

// AllPossibleMoves scans the board row by row, column by column, and
// collects the candidates of every piece belonging to the side to move.
// Moves appear in scan order, then in the order each generator emits them.
func (gs *GameState) AllPossibleMoves() []Move {
	side := gs.ToMove()
	var moves []Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := gs.board.Get(row, col)
			if !sq.Is(side) {
				continue
			}
			from := chess.Coord{Row: row, Col: col}
			moves = append(moves, generatorFor(sq.Piece).Moves(&gs.board, from)...)
		}
	}
	return moves
}

// TryMove applies m only if it is among ValidMoves. The generated candidate
// is applied, so its piece snapshots reflect the current board even if m was
// built against an older one. Unlike MakeMove it rejects illegal input with
// an error wrapping ErrIllegalMove.
func (gs *GameState) TryMove(m Move) (Move, error) {
	valid := gs.ValidMoves()
	i := indexOfMove(valid, m)
	if i < 0 {
		return Move{}, &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			PlyNum:   len(gs.moveLog) + 1,
			MoveText: m.ChessNotation(),
		}
	}
	gs.MakeMove(valid[i])
	return valid[i], nil
}

// Replay builds a game from the standard starting position by replaying
// log. Each move is rebuilt against the replayed board, so the result does
// not depend on the snapshots held by the logged moves.
func Replay(log []Move, opts ...Option) *GameState {
	gs := NewGameState(opts...)
	for _, m := range log {
		gs.MakeMove(NewMove(m.from, m.to, &gs.board))
	}
	return gs
}
