package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ExecuteMove performs a move that has already been validated as legal.
// It handles castling, en-passant captures, ordinary captures, pawn double
// steps and promotion. An empty source square or a castling move without a
// rook in the corner is reported as ErrInvariantViolation and leaves the
// board untouched.
func ExecuteMove(board *chess.Board, move chess.Move) error {
	moving := board.Get(move.From)
	if moving == nil {
		return errors.Wrapf(errors.ErrInvariantViolation, "no piece at %s", move.From)
	}
	if !move.To.InBounds() || move.From == move.To {
		return errors.Wrapf(errors.ErrInvariantViolation, "bad destination for %s", move)
	}

	if isCastlingMove(moving, move) {
		return applyCastle(board, moving, move)
	}

	// En passant: the captured pawn is not on the destination square
	if moving.Kind == chess.Pawn && isEnPassantCapture(board, moving, move.To) {
		victimSq := enPassantVictimSquare(moving.Colour, move.To)
		board.Captured = append(board.Captured, board.Remove(victimSq))
	}

	// Regular capture
	if target := board.Get(move.To); target != nil {
		board.Captured = append(board.Captured, target)
	}

	board.Relocate(move.From, move.To)

	// Pawn double-step sets the en-passant target
	board.EnPassantTarget = nil
	if moving.Kind == chess.Pawn && abs(move.To.Row-move.From.Row) == 2 {
		mid := chess.Pos((move.To.Row+move.From.Row)/2, move.To.Col)
		board.EnPassantTarget = &mid
	}

	moving.HasMoved = true

	// Promotion if requested; the pawn is discarded, not captured
	if moving.Kind == chess.Pawn && move.To.Row == moving.Colour.PromotionRow() && move.HasPromotion() {
		promoted := chess.NewPiece(moving.Colour, chess.PromotionKind(move.Promotion.Letter()), move.To)
		promoted.HasMoved = true
		board.Place(promoted)
	}

	recordLastMove(board, move)
	return nil
}
