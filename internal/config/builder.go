package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config. It does not validate; call Validate on
// the result when the values come from user input.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log encoder (console, json or legacy).
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithLogFile sets the file that receives a copy of the log.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.Log.File = path
	return b
}

// WithColour enables or disables coloured board output.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Display.Colour = enabled
	return b
}

// WithGlyphs selects the piece glyph set.
func (b *ConfigBuilder) WithGlyphs(glyphs string) *ConfigBuilder {
	b.cfg.Display.Glyphs = glyphs
	return b
}

// WithNotation sets the move notation used in move lists.
func (b *ConfigBuilder) WithNotation(notation string) *ConfigBuilder {
	b.cfg.Display.Notation = notation
	return b
}

// WithMaxLineLength sets the maximum line length of move text.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.Display.MaxLineLength = length
	return b
}

// WithCoordinates toggles rank and file labels around the board.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Display.Coordinates = enabled
	return b
}

// WithTheme sets the board colour theme (classic or contrast).
func (b *ConfigBuilder) WithTheme(theme string) *ConfigBuilder {
	b.cfg.Display.Theme = theme
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Engine.StartFEN = fen
	return b
}

// WithStrict routes move attempts through the checked move path.
func (b *ConfigBuilder) WithStrict(enabled bool) *ConfigBuilder {
	b.cfg.Engine.Strict = enabled
	return b
}
