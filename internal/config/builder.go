package config

import "io"

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

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithBoardStyle sets the board rendering style.
func (b *ConfigBuilder) WithBoardStyle(style string) *ConfigBuilder {
	b.cfg.BoardStyle = style
	return b
}

// WithCaptured controls whether captured pieces are listed under the board.
func (b *ConfigBuilder) WithCaptured(show bool) *ConfigBuilder {
	b.cfg.ShowCaptured = show
	return b
}

// WithJSONStatus enables JSON status lines.
func (b *ConfigBuilder) WithJSONStatus(enabled bool) *ConfigBuilder {
	b.cfg.JSONStatus = enabled
	return b
}

// WithPerft sets the perft depth and number of workers.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.PerftDepth = depth
	b.cfg.PerftWorkers = workers
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithPrompt sets the interactive prompt.
func (b *ConfigBuilder) WithPrompt(prompt string) *ConfigBuilder {
	b.cfg.Prompt = prompt
	return b
}

// WithHistoryFile sets the file used to persist interactive input history.
func (b *ConfigBuilder) WithHistoryFile(path string) *ConfigBuilder {
	b.cfg.HistoryFile = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
