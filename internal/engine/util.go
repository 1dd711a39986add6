package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// containsPosition reports whether sq is in list.
func containsPosition(list []chess.Position, sq chess.Position) bool {
	for _, p := range list {
		if p == sq {
			return true
		}
	}
	return false
}

// recordLastMove stores a copy of move as the board's last move.
func recordLastMove(board *chess.Board, move chess.Move) {
	m := move
	board.LastMove = &m
}
