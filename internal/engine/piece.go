// Package engine provides chess move generation, validation and board manipulation.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs  = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	slidingDirsKind = map[chess.PieceKind][][2]int{
		chess.Bishop: diagonalDirs,
		chess.Rook:   straightDirs,
		chess.Queen:  allSlidingDirs,
	}
)

// PossibleMoves returns the pseudo-legal destination squares for a piece:
// squares it could move to ignoring whether its own king is left in check.
// King moves include castling destinations from CastlingTargets.
func PossibleMoves(board *chess.Board, piece *chess.Piece) []chess.Position {
	if piece == nil {
		return nil
	}
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, piece)
	case chess.Knight:
		return stepMoves(board, piece, knightOffsets)
	case chess.King:
		moves := stepMoves(board, piece, kingOffsets)
		return append(moves, CastlingTargets(board, piece)...)
	case chess.Bishop, chess.Rook, chess.Queen:
		return slidingMoves(board, piece, slidingDirsKind[piece.Kind])
	}
	return nil
}

// stepMoves generates single-step moves for knights and kings.
// A destination is included if it is empty or holds an enemy piece.
func stepMoves(board *chess.Board, piece *chess.Piece, offsets [][2]int) []chess.Position {
	var moves []chess.Position
	for _, off := range offsets {
		to := piece.Pos.Offset(off[0], off[1])
		if !to.InBounds() {
			continue
		}
		if target := board.Get(to); target == nil || target.Colour != piece.Colour {
			moves = append(moves, to)
		}
	}
	return moves
}

// slidingMoves casts a ray along each direction. Empty squares are added and
// the ray continues; the first occupied square stops the ray and is added
// only if it holds an enemy piece.
func slidingMoves(board *chess.Board, piece *chess.Piece, dirs [][2]int) []chess.Position {
	var moves []chess.Position
	for _, dir := range dirs {
		to := piece.Pos.Offset(dir[0], dir[1])
		for to.InBounds() {
			target := board.Get(to)
			if target != nil {
				if target.Colour != piece.Colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
