package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const helpText = `Commands:
  E2 E4        move a piece (also e2e4 or e2-e4)
  E7 E8=Q      move a pawn to the last rank and promote (Q, R, B or N)
  O-O, O-O-O   castle kingside or queenside
  moves E2     list the legal destinations of the piece on E2
  board        show the board again
  status       print the position as JSON
  svg FILE     save the board as an SVG diagram
  help         show this text
  quit         end the game
`

// lineReader supplies input lines. ReadLine returns io.EOF at end of input.
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

// scanReader reads lines from a non-interactive stream.
type scanReader struct {
	sc *bufio.Scanner
}

func (r *scanReader) ReadLine() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *scanReader) Close() error { return nil }

// promptReader reads lines from a terminal with editing and history.
type promptReader struct {
	rl *readline.Instance
}

func (r *promptReader) ReadLine() (string, error) { return r.rl.Readline() }

func (r *promptReader) Close() error { return r.rl.Close() }

// newLineReader uses line editing when stdin is a terminal and plain line
// scanning otherwise, so games can be scripted through a pipe.
func newLineReader(cfg *config.Config) (lineReader, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return &scanReader{sc: bufio.NewScanner(os.Stdin)}, nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &promptReader{rl: rl}, nil
}

// runInteractive plays g with commands read from stdin.
func runInteractive(cfg *config.Config, g *game.Game) error {
	r, err := newLineReader(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	s := newSession(cfg, g)
	if _, ok := r.(*promptReader); ok {
		fmt.Fprintf(s.out, "Type 'help' for commands\n\n")
	}
	return s.run(r)
}

// session connects a game to its input and output.
type session struct {
	cfg *config.Config
	g   *game.Game
	out io.Writer
	pw  output.PositionWriter
}

func newSession(cfg *config.Config, g *game.Game) *session {
	return &session{
		cfg: cfg,
		g:   g,
		out: cfg.OutputFile,
		pw:  output.NewWriter(cfg.OutputFile, cfg),
	}
}

// run reads commands until the game ends or input runs out.
func (s *session) run(r lineReader) error {
	if err := s.showPosition(); err != nil {
		return err
	}

	for !s.g.IsOver() {
		line, err := r.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			s.g.Quit()
			break
		}
		if err != nil {
			return err
		}
		if err := s.handle(line); err != nil {
			return err
		}
	}

	fmt.Fprintf(s.out, "%s\n", s.g.Outcome())
	return nil
}

// handle executes one input line. Only output failures are returned; a
// rejected move is reported to the player and the session carries on.
func (s *session) handle(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "help", "?":
		_, err := io.WriteString(s.out, helpText)
		return err
	case "board":
		return s.showPosition()
	case "status":
		return output.WriteStatusJSON(s.out, output.StatusToJSON(s.g.ID(), s.g.Board(), s.g.Turn(), s.g.History()))
	case "moves":
		if len(fields) != 2 {
			return s.reportf("usage: moves SQUARE")
		}
		return s.listMoves(fields[1])
	case "svg":
		if len(fields) != 2 {
			return s.reportf("usage: svg FILE")
		}
		if err := writeSVGFile(fields[1], s.g); err != nil {
			return s.reportf("%v", err)
		}
		return s.reportf("Saved %s", fields[1])
	case "exit":
		s.g.Quit()
		return nil
	}

	res, err := s.g.PlayText(line)
	if err != nil {
		return s.reportf("Error: %v", err)
	}
	if res.Outcome == game.Abandoned {
		return nil
	}

	if err := s.showPosition(); err != nil {
		return err
	}
	if res.Status == chess.Check {
		return s.reportf("%s is in check", s.g.Turn())
	}
	return nil
}

// listMoves prints the legal destinations of the piece on square.
func (s *session) listMoves(square string) error {
	targets, err := s.g.LegalTargets(square)
	if err != nil {
		return s.reportf("Error: %v", err)
	}
	if len(targets) == 0 {
		return s.reportf("No legal moves from %s", strings.ToUpper(square))
	}

	names := make([]string, len(targets))
	for i, sq := range targets {
		names[i] = sq.String()
	}
	sort.Strings(names)
	return s.reportf("%s: %s", strings.ToUpper(square), strings.Join(names, " "))
}

// showPosition writes the current position followed by whose turn it is.
func (s *session) showPosition() error {
	err := s.pw.WritePosition(output.Position{
		ID:      s.g.ID(),
		Board:   s.g.Board(),
		ToMove:  s.g.Turn(),
		History: s.g.History(),
	})
	if err != nil || s.cfg.JSONStatus || s.g.IsOver() {
		return err
	}
	return s.reportf("%s to move", s.g.Turn())
}

func (s *session) reportf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.out, format+"\n", args...)
	return err
}
