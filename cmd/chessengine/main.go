// chessengine is an interactive terminal driver for the chess game-state
// engine. It reads squares and moves from standard input and prints the
// board after every change.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/chessengine-go/internal/config"
	"github.com/lgbarn/chessengine-go/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessengine version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run loads the configuration, starts a session and returns the process
// exit status.
func run(in io.Reader, out, errOut io.Writer) int {
	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 2
	}

	logger, closeLog, err := logging.New(cfg.Log, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
		_ = closeLog()
	}()

	sess, err := NewSession(cfg, in, out, logger)
	if err != nil {
		logger.Error("cannot start session", zap.Error(err))
		return 1
	}
	if err := sess.Run(); err != nil {
		logger.Error("session failed", zap.String("session", sess.ID()), zap.Error(err))
		return 1
	}
	return 0
}

// loadConfig layers the command-line flags over the file and environment
// configuration and validates the result.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessengine [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play through a game from the terminal. Pawns are the only pieces that move.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  CHESS_LOG_LEVEL, CHESS_LOG_FORMAT, CHESS_LOG_FILE, CHESS_LOG_CALLER\n")
	fmt.Fprintf(os.Stderr, "  CHESS_DISPLAY_COLOUR, CHESS_DISPLAY_GLYPHS, CHESS_DISPLAY_NOTATION,\n")
	fmt.Fprintf(os.Stderr, "  CHESS_DISPLAY_MAX_LINE_LENGTH, CHESS_DISPLAY_COORDINATES, CHESS_DISPLAY_THEME\n")
	fmt.Fprintf(os.Stderr, "  CHESS_ENGINE_START_FEN, CHESS_ENGINE_STRICT\n")
	fmt.Fprintf(os.Stderr, "\n%s", helpText)
}
