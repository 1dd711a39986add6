package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pawn pushes and diagonal captures, including en passant.
func pawnMoves(board *chess.Board, pawn *chess.Piece) []chess.Position {
	var moves []chess.Position
	dir := pawn.Colour.PawnDirection()

	// Forward steps never capture
	one := pawn.Pos.Offset(dir, 0)
	if board.IsEmpty(one) {
		moves = append(moves, one)

		two := pawn.Pos.Offset(2*dir, 0)
		if pawn.Pos.Row == pawn.Colour.PawnStartRow() && board.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	// Diagonal steps only capture
	for _, dc := range []int{-1, 1} {
		to := pawn.Pos.Offset(dir, dc)
		if !to.InBounds() {
			continue
		}
		if target := board.Get(to); target != nil {
			if target.Colour != pawn.Colour {
				moves = append(moves, to)
			}
			continue
		}
		if isEnPassantCapture(board, pawn, to) {
			moves = append(moves, to)
		}
	}

	return moves
}

// isEnPassantCapture reports whether moving pawn onto the empty square to
// captures en passant: to must be the board's en-passant target and the
// square behind it must hold an enemy pawn.
func isEnPassantCapture(board *chess.Board, pawn *chess.Piece, to chess.Position) bool {
	ep := board.EnPassantTarget
	if ep == nil || *ep != to || !board.IsEmpty(to) {
		return false
	}
	victim := board.Get(enPassantVictimSquare(pawn.Colour, to))
	return victim != nil && victim.Kind == chess.Pawn && victim.Colour != pawn.Colour
}

// enPassantVictimSquare returns the square of the pawn captured when a pawn
// of the given colour moves onto the en-passant target.
func enPassantVictimSquare(mover chess.Colour, target chess.Position) chess.Position {
	return target.Offset(-mover.PawnDirection(), 0)
}

// pawnAttacks returns the two forward-diagonal squares a pawn attacks,
// whether or not they are occupied.
func pawnAttacks(pawn *chess.Piece) []chess.Position {
	dir := pawn.Colour.PawnDirection()
	var attacks []chess.Position
	for _, dc := range []int{-1, 1} {
		if sq := pawn.Pos.Offset(dir, dc); sq.InBounds() {
			attacks = append(attacks, sq)
		}
	}
	return attacks
}
