package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// CastlingTargets returns the squares the king could castle to: the king and
// the corner rook on its rank are unmoved and every square strictly between
// them is empty. The king's destination must itself be empty, which rules out
// a king standing next to its corner rook. Whether the king passes through check is not considered here;
// LegalMoves applies that test.
func CastlingTargets(board *chess.Board, king *chess.Piece) []chess.Position {
	if king == nil || king.Kind != chess.King || king.HasMoved {
		return nil
	}

	var targets []chess.Position
	row := king.Pos.Row

	// Kingside
	if isCastlingRook(board, king, chess.Pos(row, chess.BoardSize-1)) &&
		isRowClear(board, row, king.Pos.Col+1, chess.BoardSize-1) {
		if to := king.Pos.Offset(0, 2); to.InBounds() && board.IsEmpty(to) {
			targets = append(targets, to)
		}
	}

	// Queenside
	if isCastlingRook(board, king, chess.Pos(row, 0)) &&
		isRowClear(board, row, 1, king.Pos.Col) {
		if to := king.Pos.Offset(0, -2); to.InBounds() && board.IsEmpty(to) {
			targets = append(targets, to)
		}
	}

	return targets
}

// isCastlingRook reports whether an unmoved rook of the king's colour is on sq.
func isCastlingRook(board *chess.Board, king *chess.Piece, sq chess.Position) bool {
	rook := board.Get(sq)
	return rook != nil && rook.Kind == chess.Rook && rook.Colour == king.Colour && !rook.HasMoved
}

// isRowClear reports whether columns [fromCol, toCol) of row are all empty.
func isRowClear(board *chess.Board, row, fromCol, toCol int) bool {
	for col := fromCol; col < toCol; col++ {
		if !board.IsEmpty(chess.Pos(row, col)) {
			return false
		}
	}
	return true
}

// isCastlingMove reports whether moving piece from -> to is a castling move.
func isCastlingMove(piece *chess.Piece, move chess.Move) bool {
	return piece.Kind == chess.King && move.From.Row == move.To.Row && abs(move.To.Col-move.From.Col) == 2
}

// castlingPathAttacked reports whether the king's current square or the
// square it passes over is attacked by the opponent.
func castlingPathAttacked(board *chess.Board, king *chess.Piece, to chess.Position) bool {
	opponent := king.Colour.Opposite()
	transit := king.Pos.Offset(0, sign(to.Col-king.Pos.Col))
	return IsSquareAttacked(board, king.Pos, opponent) || IsSquareAttacked(board, transit, opponent)
}

// applyCastle moves the king two squares and the corner rook to the square
// the king passed over.
func applyCastle(board *chess.Board, king *chess.Piece, move chess.Move) error {
	kingside := move.To.Col > move.From.Col
	rookFrom := chess.Pos(move.From.Row, 0)
	rookTo := move.To.Offset(0, 1)
	if kingside {
		rookFrom = chess.Pos(move.From.Row, chess.BoardSize-1)
		rookTo = move.To.Offset(0, -1)
	}

	rook := board.Get(rookFrom)
	if rook == nil || rook.Kind != chess.Rook {
		return errors.Wrapf(errors.ErrInvariantViolation, "castling %s: no rook on %s", move, rookFrom)
	}

	board.Relocate(move.From, move.To)
	king.HasMoved = true
	board.Relocate(rookFrom, rookTo)
	rook.HasMoved = true

	board.EnPassantTarget = nil
	recordLastMove(board, move)
	return nil
}
