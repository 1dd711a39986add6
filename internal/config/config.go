// Package config provides configuration for the chess command and game sessions.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Board rendering styles.
const (
	StyleASCII   = "ascii"
	StyleUnicode = "unicode"
)

// Config holds all program configuration.
type Config struct {
	// Logging
	Verbosity int       `validate:"min=0,max=2"` // 0=nothing, 1=moves and results, 2=running commentary
	LogFile   io.Writer `validate:"required"`

	// Board display
	BoardStyle   string `validate:"oneof=ascii unicode"`
	ShowCaptured bool
	JSONStatus   bool // Print status as JSON after every move

	// Perft
	PerftDepth   int `validate:"min=0,max=8"`
	PerftWorkers int `validate:"min=1,max=256"`

	// Interactive session
	Prompt      string `validate:"required,max=32"`
	HistoryFile string

	// Starting position, empty for the standard layout
	StartFEN string

	// Output streams
	OutputFile io.Writer `validate:"required"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:    1,
		LogFile:      os.Stderr,
		BoardStyle:   StyleASCII,
		PerftWorkers: 1,
		Prompt:       "> ",
		OutputFile:   os.Stdout,
	}
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
	if !strings.HasSuffix(format, "\n") {
		fmt.Fprintln(c.LogFile)
	}
}
