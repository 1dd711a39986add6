package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the destinations of piece that do not leave its own king
// attacked. Each pseudo-legal move is executed on a deep copy of the board and
// kept only if the copy does not show the mover in check. Castling moves are
// additionally rejected when the king starts on or passes over an attacked
// square. The board itself is never modified.
func LegalMoves(board *chess.Board, piece *chess.Piece) []chess.Position {
	if piece == nil {
		return nil
	}

	var res []chess.Position
	for _, to := range PossibleMoves(board, piece) {
		move := chess.NewMove(piece.Pos, to)
		if isCastlingMove(piece, move) && castlingPathAttacked(board, piece, to) {
			continue
		}
		if ok, _ := tryMove(board, move, piece.Colour); ok {
			res = append(res, to)
		}
	}
	return res
}

// LegalMovesAt returns the legal destinations of the piece on sq, or nil if
// the square is empty.
func LegalMovesAt(board *chess.Board, sq chess.Position) []chess.Position {
	return LegalMoves(board, board.Get(sq))
}

// AllLegalMoves returns every legal move for colour. Pawn moves onto the
// promotion row are expanded into one move per promotion kind.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, p := range board.PiecesOf(colour) {
		for _, to := range LegalMoves(board, p) {
			if p.Kind == chess.Pawn && to.Row == colour.PromotionRow() {
				for _, kind := range chess.PromotionKinds {
					moves = append(moves, chess.Move{From: p.Pos, To: to, Promotion: kind})
				}
				continue
			}
			moves = append(moves, chess.NewMove(p.Pos, to))
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, p := range board.PiecesOf(colour) {
		if len(LegalMoves(board, p)) > 0 {
			return true
		}
	}
	return false
}

// tryMove executes move on a copy of the board and reports whether colour's
// king is safe afterwards. The copy is returned for callers that continue
// from the resulting position. A move that fails to execute is not safe.
func tryMove(board *chess.Board, move chess.Move, colour chess.Colour) (bool, *chess.Board) {
	testBoard := board.Clone()
	if err := ExecuteMove(testBoard, move); err != nil {
		return false, nil
	}
	return !IsCheck(testBoard, colour), testBoard
}
