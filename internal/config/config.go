// Package config provides configuration for the chess engine driver.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables, then command-line flags applied by the caller.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/errors"
)

// Notation names accepted by Display.Notation.
const (
	NotationSAN        = "san"        // e4, Nf3, exd5
	NotationCoordinate = "coordinate" // e2e4
)

// Log formats accepted by Log.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatLegacy  = "legacy"
)

// Glyph sets accepted by Display.Glyphs.
const (
	GlyphsLetters = "letters"
	GlyphsUnicode = "unicode"
)

// Board themes accepted by Display.Theme.
const (
	ThemeClassic  = "classic"
	ThemeContrast = "contrast"
)

// Log holds logger settings.
type Log struct {
	Level  string `yaml:"level" envconfig:"CHESS_LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"CHESS_LOG_FORMAT"`
	// File, when set, receives a copy of every log line (append-only).
	File   string `yaml:"file" envconfig:"CHESS_LOG_FILE"`
	Caller bool   `yaml:"caller" envconfig:"CHESS_LOG_CALLER"`
}

// Display holds settings for the board and move-list output.
type Display struct {
	Colour        bool   `yaml:"colour" envconfig:"CHESS_DISPLAY_COLOUR"`
	Glyphs        string `yaml:"glyphs" envconfig:"CHESS_DISPLAY_GLYPHS"`
	Notation      string `yaml:"notation" envconfig:"CHESS_DISPLAY_NOTATION"`
	MaxLineLength int    `yaml:"max_line_length" envconfig:"CHESS_DISPLAY_MAX_LINE_LENGTH"`
	Coordinates   bool   `yaml:"coordinates" envconfig:"CHESS_DISPLAY_COORDINATES"`
	Theme         string `yaml:"theme" envconfig:"CHESS_DISPLAY_THEME"`
}

// Engine holds game-state settings.
type Engine struct {
	// StartFEN is the position a new session starts from.
	StartFEN string `yaml:"start_fen" envconfig:"CHESS_ENGINE_START_FEN"`
	// Strict routes move attempts through GameState.TryMove.
	Strict bool `yaml:"strict" envconfig:"CHESS_ENGINE_STRICT"`
}

// Config holds all driver configuration.
type Config struct {
	Log     Log     `yaml:"log"`
	Display Display `yaml:"display"`
	Engine  Engine  `yaml:"engine"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Log: Log{
			Level:  "info",
			Format: FormatConsole,
		},
		Display: Display{
			Colour:        true,
			Glyphs:        GlyphsLetters,
			Notation:      NotationSAN,
			MaxLineLength: 80,
			Coordinates:   true,
			Theme:         ThemeClassic,
		},
		Engine: Engine{
			StartFEN: engine.InitialFEN,
		},
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the CHESS_* environment variables, then validates
// the result.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("environment: %w: %w", err, errors.ErrInvalidConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile overlays the YAML document at path onto cfg. Keys missing from
// the file keep their current values.
func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse %s: %w: %w", path, err, errors.ErrInvalidConfig)
	}
	return nil
}

// Validate normalises the keyword settings to lower case, checks every
// section and returns the first problem found, wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	c.normalise()

	if !oneOf(c.Log.Level, "debug", "info", "warn", "warning", "error") {
		return invalid("log.level", c.Log.Level)
	}
	if !oneOf(c.Log.Format, FormatConsole, FormatJSON, FormatLegacy) {
		return invalid("log.format", c.Log.Format)
	}
	if !oneOf(c.Display.Notation, NotationSAN, NotationCoordinate) {
		return invalid("display.notation", c.Display.Notation)
	}
	if !oneOf(c.Display.Glyphs, GlyphsLetters, GlyphsUnicode) {
		return invalid("display.glyphs", c.Display.Glyphs)
	}
	if !oneOf(c.Display.Theme, ThemeClassic, ThemeContrast) {
		return invalid("display.theme", c.Display.Theme)
	}
	if c.Display.MaxLineLength <= 0 {
		return invalid("display.max_line_length", fmt.Sprint(c.Display.MaxLineLength))
	}
	if _, err := engine.NewGameStateFromFEN(c.Engine.StartFEN); err != nil {
		return fmt.Errorf("engine.start_fen: %w: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}

// normalise trims and lowercases the settings that are matched against
// keyword constants.
func (c *Config) normalise() {
	for _, v := range []*string{
		&c.Log.Level,
		&c.Log.Format,
		&c.Display.Glyphs,
		&c.Display.Notation,
		&c.Display.Theme,
	} {
		*v = strings.ToLower(strings.TrimSpace(*v))
	}
}

func invalid(key, value string) error {
	return fmt.Errorf("%s %q: %w", key, value, errors.ErrInvalidConfig)
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
