package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kelseyhightower/envconfig"

	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/errors"
	"github.com/lgbarn/chessengine-go/internal/testutil"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Format != FormatConsole {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, FormatConsole)
	}
	if cfg.Display.Notation != NotationSAN {
		t.Errorf("Display.Notation = %q, want %q", cfg.Display.Notation, NotationSAN)
	}
	if cfg.Display.MaxLineLength != 80 {
		t.Errorf("Display.MaxLineLength = %d, want 80", cfg.Display.MaxLineLength)
	}
	if !cfg.Display.Colour {
		t.Error("Display.Colour should be true by default")
	}
	if cfg.Engine.StartFEN != engine.InitialFEN {
		t.Errorf("Engine.StartFEN = %q, want the initial position", cfg.Engine.StartFEN)
	}
	if cfg.Engine.Strict {
		t.Error("Engine.Strict should be false by default")
	}
	testutil.AssertNoError(t, cfg.Validate(), "defaults must validate")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, false},
		{"upper case level", func(c *Config) { c.Log.Level = "WARN" }, false},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"json format", func(c *Config) { c.Log.Format = FormatJSON }, false},
		{"legacy format", func(c *Config) { c.Log.Format = FormatLegacy }, false},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"coordinate notation", func(c *Config) { c.Display.Notation = NotationCoordinate }, false},
		{"unknown notation", func(c *Config) { c.Display.Notation = "uci" }, true},
		{"unicode glyphs", func(c *Config) { c.Display.Glyphs = GlyphsUnicode }, false},
		{"unknown glyphs", func(c *Config) { c.Display.Glyphs = "emoji" }, true},
		{"contrast theme", func(c *Config) { c.Display.Theme = ThemeContrast }, false},
		{"unknown theme", func(c *Config) { c.Display.Theme = "neon" }, true},
		{"zero line length", func(c *Config) { c.Display.MaxLineLength = 0 }, true},
		{"negative line length", func(c *Config) { c.Display.MaxLineLength = -5 }, true},
		{"custom start", func(c *Config) { c.Engine.StartFEN = "4k3/pppppppp/8/8/8/8/PPPPPPPP/4K3 b" }, false},
		{"bad start", func(c *Config) { c.Engine.StartFEN = "not a fen" }, true},
		{"empty start", func(c *Config) { c.Engine.StartFEN = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateNormalisesKeywords(t *testing.T) {
	cfg := NewConfigBuilder().
		WithLogLevel(" DEBUG ").
		WithLogFormat("Json").
		WithGlyphs("Unicode").
		WithNotation("Coordinate").
		WithTheme("CONTRAST").
		Build()

	testutil.AssertNoError(t, cfg.Validate())
	testutil.AssertEqual(t, cfg.Log.Level, "debug")
	testutil.AssertEqual(t, cfg.Log.Format, FormatJSON)
	testutil.AssertEqual(t, cfg.Display.Glyphs, GlyphsUnicode)
	testutil.AssertEqual(t, cfg.Display.Notation, NotationCoordinate)
	testutil.AssertEqual(t, cfg.Display.Theme, ThemeContrast)
}

func TestLoad_MixedCaseEnvironment(t *testing.T) {
	path := writeConfigFile(t, "display:\n  notation: Coordinate\n")
	t.Setenv("CHESS_DISPLAY_GLYPHS", "Unicode")

	cfg, err := Load(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg.Display.Notation, NotationCoordinate)
	testutil.AssertEqual(t, cfg.Display.Glyphs, GlyphsUnicode)
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chess.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg, NewConfig())
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfigFile(t, `
log:
  level: debug
  format: json
display:
  notation: coordinate
  max_line_length: 40
engine:
  strict: true
`)

	cfg, err := Load(path)
	testutil.AssertNoError(t, err)

	want := NewConfig()
	want.Log.Level = "debug"
	want.Log.Format = FormatJSON
	want.Display.Notation = NotationCoordinate
	want.Display.MaxLineLength = 40
	want.Engine.Strict = true
	testutil.AssertEqual(t, cfg, want)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeConfigFile(t, `
log:
  level: debug
display:
  colour: true
`)
	t.Setenv("CHESS_LOG_LEVEL", "error")
	t.Setenv("CHESS_DISPLAY_COLOUR", "false")
	t.Setenv("CHESS_DISPLAY_MAX_LINE_LENGTH", "60")

	cfg, err := Load(path)
	testutil.AssertNoError(t, err)

	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
	}
	if cfg.Display.Colour {
		t.Error("Display.Colour = true, want false from environment")
	}
	if cfg.Display.MaxLineLength != 60 {
		t.Errorf("Display.MaxLineLength = %d, want 60", cfg.Display.MaxLineLength)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		testutil.AssertErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfigFile(t, "log: [unterminated")
		_, err := Load(path)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
	})

	t.Run("invalid value in file", func(t *testing.T) {
		path := writeConfigFile(t, "display:\n  notation: figurine\n")
		_, err := Load(path)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
		testutil.AssertContains(t, err.Error(), "display.notation")
	})

	t.Run("unparsable environment", func(t *testing.T) {
		t.Setenv("CHESS_ENGINE_STRICT", "perhaps")
		_, err := Load("")
		testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)

		var parseErr *envconfig.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("error %v does not carry an envconfig.ParseError", err)
		}
		testutil.AssertEqual(t, parseErr.FieldName, "Strict")
	})

	t.Run("bad start position", func(t *testing.T) {
		t.Setenv("CHESS_ENGINE_START_FEN", "8/8 w")
		_, err := Load("")
		testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	})
}

func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithLogLevel("debug").
		WithLogFormat(FormatLegacy).
		WithLogFile("chess.log").
		WithColour(false).
		WithGlyphs(GlyphsUnicode).
		WithNotation(NotationCoordinate).
		WithMaxLineLength(20).
		WithCoordinates(false).
		WithTheme(ThemeContrast).
		WithStartFEN("8/8/8/8/8/8/8/8 w").
		WithStrict(true).
		Build()

	want := &Config{
		Log: Log{Level: "debug", Format: FormatLegacy, File: "chess.log"},
		Display: Display{
			Colour:        false,
			Glyphs:        GlyphsUnicode,
			Notation:      NotationCoordinate,
			MaxLineLength: 20,
			Coordinates:   false,
			Theme:         ThemeContrast,
		},
		Engine: Engine{StartFEN: "8/8/8/8/8/8/8/8 w", Strict: true},
	}
	testutil.AssertEqual(t, cfg, want)
	testutil.AssertNoError(t, cfg.Validate())
}
