// Package hashing provides Zobrist keys for board positions and a table that
// caches move-path counts by position.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

// Random key tables. A piece key depends on colour, kind, square and, for
// kings and rooks, whether the piece has moved, since that decides castling.
var (
	pieceKeys     [2][chess.King + 1][2][numSquares]uint64
	enPassantKeys [numSquares]uint64
	blackToMove   uint64
)

func init() {
	seed := uint64(0x9E3779B97F4A7C15)
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for m := range pieceKeys[c][k] {
				for sq := range pieceKeys[c][k][m] {
					pieceKeys[c][k][m][sq] = splitMix64(&seed)
				}
			}
		}
	}
	for sq := range enPassantKeys {
		enPassantKeys[sq] = splitMix64(&seed)
	}
	blackToMove = splitMix64(&seed)
}

// splitMix64 advances state and returns the next pseudo-random value.
func splitMix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash returns the Zobrist key of board with toMove to play.
// Two positions share a key when they have the same pieces on the same
// squares, the same castling-relevant moved flags, the same en-passant
// target and the same side to move. Captured pieces and the last move are
// not part of the key.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for _, p := range board.Pieces() {
		moved := 0
		if p.HasMoved && (p.Kind == chess.King || p.Kind == chess.Rook) {
			moved = 1
		}
		hash ^= pieceKeys[p.Colour][p.Kind][moved][squareIndex(p.Pos)]
	}
	if ep := board.EnPassantTarget; ep != nil && ep.InBounds() {
		hash ^= enPassantKeys[squareIndex(*ep)]
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash is a cheap placement-only checksum used to confirm a key match.
func WeakHash(board *chess.Board) uint32 {
	var sum uint32
	for _, p := range board.Pieces() {
		sum += uint32(squareIndex(p.Pos)+1) * uint32(int(p.Kind)+8*int(p.Colour))
	}
	return sum
}

func squareIndex(p chess.Position) int {
	return p.Row*chess.BoardSize + p.Col
}
