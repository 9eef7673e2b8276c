package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/config"
	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/errors"
	"github.com/lgbarn/chessengine-go/internal/output"
	"github.com/lgbarn/chessengine-go/internal/render"
)

const helpText = `Commands:
  e2          select a square; the same square again clears the selection,
              a different square attempts a move
  e2e4, e2 e4 attempt a move
  undo, z     take back the last move
  moves       list valid moves (from the selected square, if any)
  board       show the board
  history     show the moves played
  json        show the game as JSON
  epd         show the position as EPD
  placement   show the piece placement field of the position
  pieces      count the pieces on the board
  help        show this text
  quit        leave
`

// Session drives one game from line-oriented input. It keeps the valid
// moves of the current position and recomputes them only after a move is
// made or taken back.
type Session struct {
	id       string
	cfg      *config.Config
	gs       *engine.GameState
	valid    []engine.Move
	selected *chess.Coord
	clicks   []chess.Coord

	in       io.Reader
	out      io.Writer
	log      *zap.Logger
	renderer *render.Renderer
	text     output.GameWriter
	json     output.GameWriter
}

// NewSession creates a session starting from cfg.Engine.StartFEN. Every log
// line it writes carries the session id.
func NewSession(cfg *config.Config, in io.Reader, out io.Writer, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	log := logger.With(zap.String("session", id))

	gs, err := engine.NewGameStateFromFEN(cfg.Engine.StartFEN, engine.WithLogger(log))
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}

	return &Session{
		id:       id,
		cfg:      cfg,
		gs:       gs,
		valid:    gs.ValidMoves(),
		in:       in,
		out:      out,
		log:      log,
		renderer: render.New(cfg.Display).WithTheme(render.ThemeFor(cfg.Display.Theme)),
		text:     output.NewTextWriter(out, cfg.Display),
		json:     output.NewJSONWriter(out, id, cfg.Engine.StartFEN),
	}, nil
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Run reads commands until quit or end of input.
func (s *Session) Run() error {
	s.log.Info("session started", zap.String("fen", s.cfg.Engine.StartFEN), zap.Bool("strict", s.cfg.Engine.Strict))
	if err := s.showBoard(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		quit, err := s.Execute(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}

	s.log.Info("session ended", zap.Int("ply", s.gs.Ply()))
	return nil
}

// Execute handles one line of input. It reports whether the session should
// end; errors are output failures only.
func (s *Session) Execute(line string) (bool, error) {
	cmd := strings.ToLower(strings.TrimSpace(line))

	switch cmd {
	case "":
		return false, nil
	case "quit", "q", "exit":
		return true, nil
	case "help", "?":
		return false, s.printf("%s", helpText)
	case "undo", "z":
		return false, s.undo()
	case "moves":
		return false, s.listMoves()
	case "board":
		return false, s.showBoard()
	case "history":
		if s.gs.Ply() == 0 {
			return false, s.printf("no moves\n")
		}
		return false, s.text.WriteGame(s.gs)
	case "json":
		return false, s.json.WriteGame(s.gs)
	case "epd":
		return false, s.printf("%s\n", s.gs.EPD())
	case "placement":
		board := s.gs.Board()
		return false, s.printf("%s\n", engine.BoardToPlacement(&board))
	case "pieces":
		return false, s.countPieces()
	}

	if c, ok := chess.ParseCoord(cmd); ok {
		return false, s.click(c)
	}

	board := s.gs.Board()
	m, err := engine.ParseMove(cmd, &board)
	if err != nil {
		return false, s.printf("unknown command %q (try help)\n", line)
	}
	s.clearSelection()
	return false, s.attempt(m)
}

// click selects a square. Selecting the selected square again clears the
// selection; a second, different square completes a move attempt.
func (s *Session) click(c chess.Coord) error {
	if s.selected != nil && *s.selected == c {
		s.clearSelection()
		return s.printf("cleared %v\n", c)
	}

	s.selected = &c
	s.clicks = append(s.clicks, c)
	if len(s.clicks) < 2 {
		board := s.gs.Board()
		return s.printf("selected %v (%v)\n", c, board.At(c))
	}

	board := s.gs.Board()
	m := engine.NewMove(s.clicks[0], s.clicks[1], &board)
	s.clearSelection()
	return s.attempt(m)
}

func (s *Session) clearSelection() {
	s.selected = nil
	s.clicks = s.clicks[:0]
}

// attempt echoes the move and applies it if it is one of the valid moves.
func (s *Session) attempt(m engine.Move) error {
	if err := s.printf("%s\n", m.RealChessNotation()); err != nil {
		return err
	}

	if s.cfg.Engine.Strict {
		if _, err := s.gs.TryMove(m); err != nil {
			s.log.Info("move rejected", zap.Stringer("move", m), zap.Error(err))
			return s.printf("illegal move: %v\n", err)
		}
	} else {
		if !engine.ContainsMove(s.valid, m) {
			s.log.Info("move rejected", zap.Stringer("move", m))
			return s.printf("illegal move %v\n", m)
		}
		s.gs.MakeMove(m)
	}

	s.log.Info("move made", zap.Stringer("move", m), zap.Int("ply", s.gs.Ply()))
	s.moveMade()
	return s.showBoard()
}

func (s *Session) undo() error {
	m, ok := s.gs.UndoMove()
	if !ok {
		return s.printf("nothing to undo\n")
	}
	s.log.Info("move undone", zap.Stringer("move", m), zap.Int("ply", s.gs.Ply()))
	s.moveMade()
	if err := s.printf("undid %s\n", m.RealChessNotation()); err != nil {
		return err
	}
	return s.showBoard()
}

// moveMade refreshes the cached valid moves after the position changed.
func (s *Session) moveMade() {
	s.clearSelection()
	s.valid = s.gs.ValidMoves()
}

// listMoves prints the valid moves, restricted to the selected square when
// one is selected.
func (s *Session) listMoves() error {
	var names []string
	for _, m := range s.valid {
		if s.selected != nil && m.From() != *s.selected {
			continue
		}
		names = append(names, output.FormatMove(m, s.cfg.Display.Notation))
	}
	if len(names) == 0 {
		return s.printf("no moves\n")
	}
	return s.printf("%s\n", strings.Join(names, " "))
}

// piecesInOrder is the order countPieces lists pieces in.
var piecesInOrder = []chess.Piece{chess.Pawn, chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King}

// countPieces prints one line per side with the number of each piece on
// the board, leaving out pieces that are gone.
func (s *Session) countPieces() error {
	board := s.gs.Board()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		var counts []string
		for _, p := range piecesInOrder {
			sq := chess.NewSquare(colour, p)
			if n := board.Count(sq); n > 0 {
				counts = append(counts, fmt.Sprintf("%d %v", n, sq))
			}
		}
		if len(counts) == 0 {
			counts = append(counts, "none")
		}
		if err := s.printf("%v: %s\n", colour, strings.Join(counts, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// showBoard draws the board, marking the selected square and its targets.
func (s *Session) showBoard() error {
	var marked []chess.Coord
	if s.selected != nil {
		marked = append(marked, *s.selected)
		for _, m := range s.valid {
			if m.From() == *s.selected {
				marked = append(marked, m.To())
			}
		}
	}

	board := s.gs.Board()
	if err := s.renderer.Render(s.out, &board, marked...); err != nil {
		return err
	}
	return s.printf("%v to move\n", s.gs.ToMove())
}

func (s *Session) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.out, format, args...)
	return err
}
