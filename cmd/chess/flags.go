// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Display options
	boardStyle   = flag.String("style", config.StyleASCII, "Board style: ascii or unicode")
	showCaptured = flag.Bool("captured", false, "List captured pieces under the board")
	jsonStatus   = flag.Bool("json", false, "Print the position as a JSON status line instead of a diagram")
	svgFile      = flag.String("svg", "", "Write the starting position as SVG to this file and exit")

	// Game setup
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the standard layout")

	// Perft
	perftDepth   = flag.Int("perft", 0, "Count legal move paths to depth N and exit")
	perftWorkers = flag.Int("workers", 1, "Parallel workers for -perft")

	// Interactive session
	prompt      = flag.String("prompt", "> ", "Prompt shown before each command")
	historyFile = flag.String("history", "", "Command history file for interactive sessions")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file instead of stderr")
	quiet     = flag.Bool("s", false, "Silent mode: no move log")
	verbosity = flag.Int("v", 1, "Log verbosity: 0, 1 or 2")

	// Other
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies all command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyDisplayFlags(cfg)
	applyPerftFlags(cfg)
	applySessionFlags(cfg)
	applyLoggingFlags(cfg)
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) {
	cfg.BoardStyle = *boardStyle
	cfg.ShowCaptured = *showCaptured
	cfg.JSONStatus = *jsonStatus
}

// applyPerftFlags configures move path counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.PerftDepth = *perftDepth
	cfg.PerftWorkers = *perftWorkers
}

// applySessionFlags configures the interactive session.
func applySessionFlags(cfg *config.Config) {
	cfg.Prompt = *prompt
	cfg.HistoryFile = *historyFile
	cfg.StartFEN = *startFEN
}

// applyLoggingFlags configures log verbosity. Silent mode wins over -v.
func applyLoggingFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}
