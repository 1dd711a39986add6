package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ValidateMove checks a requested move against the legal destinations of the
// piece on move.From. It returns an error wrapping ErrNoPiece or
// ErrIllegalMove when the move must be rejected.
func ValidateMove(board *chess.Board, move chess.Move) error {
	piece := board.Get(move.From)
	if piece == nil {
		return errors.Wrapf(errors.ErrNoPiece, "%s", move.From)
	}
	if !containsPosition(LegalMoves(board, piece), move.To) {
		return errors.Wrapf(errors.ErrIllegalMove, "%s %s", piece.Kind, move)
	}
	return nil
}

// ApplyMove validates and then executes a requested move, including any
// promotion, as a single step. A rejected move leaves the board unchanged.
func ApplyMove(board *chess.Board, move chess.Move) error {
	if err := ValidateMove(board, move); err != nil {
		return err
	}
	return ExecuteMove(board, move)
}

// NeedsPromotion reports whether move would take a pawn onto its promotion row.
func NeedsPromotion(board *chess.Board, move chess.Move) bool {
	p := board.Get(move.From)
	return p != nil && p.Kind == chess.Pawn && move.To.Row == p.Colour.PromotionRow()
}
