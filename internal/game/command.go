package game

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// CommandKind identifies what a parsed input line asks for.
type CommandKind int

const (
	CmdMove CommandKind = iota
	CmdCastleKingside
	CmdCastleQueenside
	CmdQuit
)

// Command is one parsed line of player input.
type Command struct {
	Kind CommandKind
	Move chess.Move // Only for CmdMove
	Text string     // The input as typed, trimmed
}

// ParseCommand parses a move command. Accepted forms:
//
//	E2 E4, e2e4, e2-e4   plain moves
//	E7 E8=Q              moves with a promotion choice (Q, R, B or N)
//	O-O, 0-0             kingside castling
//	O-O-O, 0-0-0         queenside castling
//	quit, q              end the game
//
// Squares and letters are case-insensitive. Errors wrap ErrInvalidNotation.
func ParseCommand(line string) (Command, error) {
	text := strings.TrimSpace(line)
	cmd := Command{Text: text}

	switch strings.ToUpper(text) {
	case "":
		return cmd, errors.Wrap(errors.ErrInvalidNotation, "empty command")
	case "QUIT", "Q":
		cmd.Kind = CmdQuit
		return cmd, nil
	case "O-O", "0-0":
		cmd.Kind = CmdCastleKingside
		return cmd, nil
	case "O-O-O", "0-0-0":
		cmd.Kind = CmdCastleQueenside
		return cmd, nil
	}

	movePart, promo := text, ""
	if i := strings.IndexByte(text, '='); i >= 0 {
		movePart, promo = strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:])
		if promo == "" {
			return cmd, errors.Wrapf(errors.ErrInvalidNotation, "missing promotion piece in %q", text)
		}
	}

	from, to, err := parseSquares(movePart)
	if err != nil {
		return cmd, errors.Wrapf(err, "command %q", text)
	}

	cmd.Kind = CmdMove
	cmd.Move = chess.NewMove(from, to)
	if promo != "" {
		cmd.Move.Promotion = chess.PromotionKind(promo[0])
	}
	return cmd, nil
}

// parseSquares splits "E2 E4", "e2e4" or "e2-e4" into two squares.
func parseSquares(s string) (chess.Position, chess.Position, error) {
	tokens := strings.Fields(strings.ReplaceAll(s, "-", " "))
	if len(tokens) == 1 && len(tokens[0]) == 4 {
		tokens = []string{tokens[0][:2], tokens[0][2:]}
	}
	if len(tokens) != 2 {
		return chess.Position{}, chess.Position{}, errors.Wrap(errors.ErrInvalidNotation, "expected two squares, e.g. E2 E4")
	}

	from, err := chess.FromAlgebraic(tokens[0])
	if err != nil {
		return chess.Position{}, chess.Position{}, err
	}
	to, err := chess.FromAlgebraic(tokens[1])
	if err != nil {
		return chess.Position{}, chess.Position{}, err
	}
	return from, to, nil
}
