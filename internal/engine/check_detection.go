package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsSquareAttacked returns true if any piece of byColour can reach sq.
// Pawns attack their forward diagonals regardless of occupancy; every other
// piece attacks the squares of its pseudo-legal moves. Castling never captures
// so it is not counted as king reach.
func IsSquareAttacked(board *chess.Board, sq chess.Position, byColour chess.Colour) bool {
	for _, p := range board.PiecesOf(byColour) {
		var reach []chess.Position
		switch p.Kind {
		case chess.Pawn:
			reach = pawnAttacks(p)
		case chess.King:
			reach = stepMoves(board, p, kingOffsets)
		default:
			reach = PossibleMoves(board, p)
		}
		if containsPosition(reach, sq) {
			return true
		}
	}
	return false
}

// IsCheck returns true if the given colour's king is attacked.
// A board without that king is reported as not in check.
func IsCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsCheckmate returns true if colour is in check and no pseudo-legal move of
// any of its pieces, simulated on a copy of the board, gets it out of check.
// Castling is never a way out of check.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	if !IsCheck(board, colour) {
		return false
	}
	for _, p := range board.PiecesOf(colour) {
		for _, to := range PossibleMoves(board, p) {
			move := chess.NewMove(p.Pos, to)
			if isCastlingMove(p, move) {
				continue
			}
			if ok, _ := tryMove(board, move, colour); ok {
				return false
			}
		}
	}
	return true
}

// Status classifies colour's position as NoCheck, Check or Checkmate.
func Status(board *chess.Board, colour chess.Colour) chess.CheckStatus {
	switch {
	case IsCheckmate(board, colour):
		return chess.Checkmate
	case IsCheck(board, colour):
		return chess.Check
	default:
		return chess.NoCheck
	}
}
