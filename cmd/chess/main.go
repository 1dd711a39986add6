// chess is a two-player chess game for the terminal with perft and diagram tools.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
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
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	g, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case cfg.PerftDepth > 0:
		err = runPerft(cfg, g)
	case *svgFile != "":
		err = writeSVGFile(*svgFile, g)
	default:
		err = runInteractive(cfg, g)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newGame starts from cfg.StartFEN when set, the standard layout otherwise.
func newGame(cfg *config.Config) (*game.Game, error) {
	if cfg.StartFEN != "" {
		return game.NewFromFEN(cfg, cfg.StartFEN)
	}
	return game.New(cfg), nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// writeSVGFile saves the current position of g as an SVG diagram.
func writeSVGFile(path string, g *game.Game) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating SVG file %s: %w", path, err)
	}
	output.WriteSVG(file, g.Board())
	return file.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves are entered as two squares (E2 E4, e2e4, e2-e4).\n")
	fmt.Fprintf(os.Stderr, "Add =Q, =R, =B or =N when a pawn reaches the last rank.\n")
	fmt.Fprintf(os.Stderr, "Castle with O-O or O-O-O. Type 'help' during a game for more.\n")
}
