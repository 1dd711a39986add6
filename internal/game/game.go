// Package game runs a two-player chess session on top of the rules engine:
// it tracks whose turn it is, turns parsed commands into moves, records the
// move history and decides when the game is over.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Outcome is the state of a game.
type Outcome int

const (
	InProgress Outcome = iota
	WhiteWins
	BlackWins
	Abandoned
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "White wins by checkmate"
	case BlackWins:
		return "Black wins by checkmate"
	case Abandoned:
		return "Game ended by user"
	default:
		return "In progress"
	}
}

// winner returns the outcome in which colour has delivered mate.
func winner(colour chess.Colour) Outcome {
	if colour == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// Result describes a move that was played.
type Result struct {
	Ply      int             // 1-based ply number of the move
	Player   chess.Colour    // Side that moved
	Move     chess.Move      // The move as executed, promotion included
	Piece    chess.PieceKind // Kind of the moving piece before promotion
	Captured *chess.Piece    // Piece taken by the move, if any
	Status   chess.CheckStatus
	Outcome  Outcome
}

// Game is a single two-player session. It is not safe for concurrent use.
type Game struct {
	id      string
	cfg     *config.Config
	board   *chess.Board
	turn    chess.Colour
	history []chess.Move
	outcome Outcome
}

// New starts a game from the standard position with White to move.
func New(cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g := &Game{
		id:    uuid.New().String(),
		cfg:   cfg,
		board: chess.NewBoard(),
		turn:  chess.White,
	}
	cfg.Logf(2, "[%s] new game", g.id)
	return g
}

// NewFromFEN starts a game from a FEN position. A position in which the side
// to move is already mated starts finished.
func NewFromFEN(cfg *config.Config, fen string) (*Game, error) {
	board, toMove, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := New(cfg)
	g.board = board
	g.turn = toMove
	if engine.IsCheckmate(board, toMove) {
		g.outcome = winner(toMove.Opposite())
	}
	g.cfg.Logf(2, "[%s] position %s, %s to move", g.id, engine.Placement(board), toMove)
	return g, nil
}

// ID returns the unique id of the game.
func (g *Game) ID() string { return g.id }

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *chess.Board { return g.board }

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour { return g.turn }

// Outcome returns the current outcome.
func (g *Game) Outcome() Outcome { return g.outcome }

// IsOver reports whether the game has finished.
func (g *Game) IsOver() bool { return g.outcome != InProgress }

// History returns a copy of the moves played so far.
func (g *Game) History() []chess.Move {
	out := make([]chess.Move, len(g.history))
	copy(out, g.history)
	return out
}

// Status returns the check status of the side to move.
func (g *Game) Status() chess.CheckStatus {
	return engine.Status(g.board, g.turn)
}

// LegalTargets returns the legal destinations of the piece on the named
// square. An empty square yields no targets.
func (g *Game) LegalTargets(square string) ([]chess.Position, error) {
	sq, err := chess.FromAlgebraic(square)
	if err != nil {
		return nil, err
	}
	return engine.LegalMovesAt(g.board, sq), nil
}

// Quit abandons the game.
func (g *Game) Quit() {
	if g.outcome == InProgress {
		g.outcome = Abandoned
		g.cfg.Logf(1, "[%s] abandoned after %d plies", g.id, len(g.history))
	}
}

// PlayText parses line and plays it.
func (g *Game) PlayText(line string) (Result, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return Result{}, g.moveError(err, line)
	}
	return g.Play(cmd)
}

// Play executes a command for the side to move. Moves must be legal for a
// piece of that side; a pawn reaching the last rank needs a promotion choice.
// A rejected command leaves the game unchanged and returns a *errors.MoveError.
func (g *Game) Play(cmd Command) (Result, error) {
	if cmd.Kind == CmdQuit {
		g.Quit()
		return Result{Outcome: g.outcome}, nil
	}
	if g.IsOver() {
		return Result{}, g.moveError(errors.ErrGameOver, cmd.Text)
	}

	move, err := g.resolve(cmd)
	if err != nil {
		return Result{}, g.moveError(err, cmd.Text)
	}

	piece := g.board.Get(move.From)
	capturedBefore := len(g.board.Captured)
	if err := engine.ApplyMove(g.board, move); err != nil {
		return Result{}, g.moveError(err, cmd.Text)
	}

	g.history = append(g.history, move)
	res := Result{
		Ply:    len(g.history),
		Player: g.turn,
		Move:   move,
		Piece:  piece.Kind,
	}
	if len(g.board.Captured) > capturedBefore {
		res.Captured = g.board.Captured[len(g.board.Captured)-1]
	}

	g.turn = g.turn.Opposite()
	res.Status = engine.Status(g.board, g.turn)
	if res.Status == chess.Checkmate {
		g.outcome = winner(res.Player)
	}
	res.Outcome = g.outcome

	g.cfg.Logf(1, "[%s] ply %d: %s %s", g.id, res.Ply, res.Player, move)
	if res.Status != chess.NoCheck {
		g.cfg.Logf(1, "[%s] %s is in %s", g.id, g.turn, res.Status)
	}
	return res, nil
}

// resolve turns a command into a concrete move for the side to move and runs
// the ownership and promotion checks that do not depend on legality.
func (g *Game) resolve(cmd Command) (chess.Move, error) {
	var move chess.Move
	switch cmd.Kind {
	case CmdMove:
		move = cmd.Move
	case CmdCastleKingside, CmdCastleQueenside:
		kingSq, ok := g.board.FindKing(g.turn)
		if !ok {
			return move, errors.Wrap(errors.ErrIllegalMove, "no king to castle with")
		}
		dc := 2
		if cmd.Kind == CmdCastleQueenside {
			dc = -2
		}
		move = chess.NewMove(kingSq, kingSq.Offset(0, dc))
	default:
		return move, errors.Wrapf(errors.ErrInvalidNotation, "unknown command %d", cmd.Kind)
	}

	piece := g.board.Get(move.From)
	if piece == nil {
		return move, errors.Wrapf(errors.ErrNoPiece, "%s", move.From)
	}
	if piece.Colour != g.turn {
		return move, errors.Wrapf(errors.ErrWrongTurn, "%s belongs to %s", move.From, piece.Colour)
	}
	if err := engine.ValidateMove(g.board, move); err != nil {
		return move, err
	}

	if engine.NeedsPromotion(g.board, move) {
		if !move.HasPromotion() {
			return move, errors.Wrapf(errors.ErrPromotionRequired, "add =Q, =R, =B or =N to %s", move)
		}
	} else {
		move.Promotion = chess.NoKind
	}
	return move, nil
}

// moveError adds the game context to err.
func (g *Game) moveError(err error, text string) error {
	return &errors.MoveError{
		Err:      err,
		PlyNum:   len(g.history) + 1,
		Player:   g.turn.String(),
		MoveText: text,
	}
}
