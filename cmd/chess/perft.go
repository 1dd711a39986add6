package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// runPerft counts move paths from the game's position and prints the
// per-move breakdown. An interrupt stops the count.
func runPerft(cfg *config.Config, g *game.Game) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	entries, err := engine.Divide(ctx, g.Board(), g.Turn(), cfg.PerftDepth, cfg.PerftWorkers)
	if err != nil {
		return fmt.Errorf("perft %d: %w", cfg.PerftDepth, err)
	}
	cfg.Logf(1, "perft %d: %d nodes in %s with %d worker(s)",
		cfg.PerftDepth, engine.DivideTotal(entries), time.Since(start).Round(time.Millisecond), cfg.PerftWorkers)

	return writeDivide(cfg.OutputFile, entries)
}

// writeDivide prints one "MOVE: nodes" line per root move and the total.
func writeDivide(w io.Writer, entries []engine.DivideEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nNodes: %d\n", engine.DivideTotal(entries))
	return err
}
