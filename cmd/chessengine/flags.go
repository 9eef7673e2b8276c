// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessengine-go/internal/config"
)

var (
	// Configuration sources
	configFile = flag.String("config", "", "YAML configuration file")

	// Logging
	logLevel  = flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat = flag.String("log-format", "", "Log format: console, json, legacy")
	logFile   = flag.String("log-file", "", "Append log lines to this file as well")

	// Display
	notation   = flag.String("notation", "", "Move notation: san, coordinate")
	lineLength = flag.Int("w", 0, "Maximum line length of move lists")
	noColour   = flag.Bool("nocolour", false, "Disable coloured board output")
	glyphs     = flag.String("glyphs", "", "Piece glyphs: letters, unicode")
	noCoords   = flag.Bool("nocoords", false, "Hide rank and file labels")
	theme      = flag.String("theme", "", "Board colours: classic, contrast")

	// Engine
	startFEN = flag.String("fen", "", "Start from this FEN position")
	strict   = flag.Bool("strict", false, "Reject moves through the checked move path")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies the command-line flags given explicitly to the
// configuration. Flags left at their defaults do not override values from
// the file or environment.
func applyFlags(cfg *config.Config) {
	applyFlagSet(cfg, visitedFlags())
}

// visitedFlags returns the names of the flags set on the command line.
func visitedFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlagSet copies the flags named in set into cfg.
func applyFlagSet(cfg *config.Config, set map[string]bool) {
	applyLogFlags(cfg, set)
	applyDisplayFlags(cfg, set)

	if set["fen"] {
		cfg.Engine.StartFEN = *startFEN
	}
	if set["strict"] {
		cfg.Engine.Strict = *strict
	}
}

// applyLogFlags configures logger settings.
func applyLogFlags(cfg *config.Config, set map[string]bool) {
	if set["log-level"] {
		cfg.Log.Level = *logLevel
	}
	if set["log-format"] {
		cfg.Log.Format = *logFormat
	}
	if set["log-file"] {
		cfg.Log.File = *logFile
	}
}

// applyDisplayFlags configures board and move-list output.
func applyDisplayFlags(cfg *config.Config, set map[string]bool) {
	if set["notation"] {
		cfg.Display.Notation = *notation
	}
	if set["w"] {
		cfg.Display.MaxLineLength = *lineLength
	}
	if set["nocolour"] {
		cfg.Display.Colour = !*noColour
	}
	if set["glyphs"] {
		cfg.Display.Glyphs = *glyphs
	}
	if set["nocoords"] {
		cfg.Display.Coordinates = !*noCoords
	}
	if set["theme"] {
		cfg.Display.Theme = *theme
	}
}
