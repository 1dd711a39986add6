package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// BoardWith builds a board from piece specs such as "wKe1" or "bPd7": colour
// letter, piece letter, square. Pieces start unmoved, except pawns away from
// their start row. It calls t.Fatal on a malformed spec.
func BoardWith(t *testing.T, specs ...string) *chess.Board {
	t.Helper()
	b := chess.NewEmptyBoard()
	for _, spec := range specs {
		b.Place(MustPiece(t, spec))
	}
	return b
}

// MustPiece parses a single piece spec, see BoardWith.
func MustPiece(t *testing.T, spec string) *chess.Piece {
	t.Helper()
	if len(spec) != 4 {
		t.Fatalf("bad piece spec %q", spec)
	}

	var colour chess.Colour
	switch spec[0] {
	case 'w':
		colour = chess.White
	case 'b':
		colour = chess.Black
	default:
		t.Fatalf("bad colour in piece spec %q", spec)
	}

	kind := chess.KindFromLetter(spec[1])
	if kind == chess.NoKind {
		t.Fatalf("bad piece letter in spec %q", spec)
	}

	sq := Square(t, spec[2:])
	p := chess.NewPiece(colour, kind, sq)
	if kind == chess.Pawn {
		p.HasMoved = sq.Row != colour.PawnStartRow()
	}
	return p
}

// Square parses an algebraic square, calling t.Fatal on error.
func Square(t *testing.T, s string) chess.Position {
	t.Helper()
	sq, err := chess.FromAlgebraic(s)
	if err != nil {
		t.Fatalf("bad square %q: %v", s, err)
	}
	return sq
}

// Squares parses several algebraic squares.
func Squares(t *testing.T, names ...string) []chess.Position {
	t.Helper()
	out := make([]chess.Position, 0, len(names))
	for _, n := range names {
		out = append(out, Square(t, n))
	}
	return out
}

// Move builds a move from two algebraic squares.
func Move(t *testing.T, from, to string) chess.Move {
	t.Helper()
	return chess.NewMove(Square(t, from), Square(t, to))
}

// BoardSnapshot is a value copy of everything observable on a board, suitable
// for comparing a board before and after an operation with cmp.Diff.
type BoardSnapshot struct {
	Pieces          []chess.Piece
	Captured        []chess.Piece
	EnPassantTarget *chess.Position
	LastMove        *chess.Move
}

// Snapshot captures the current state of b.
func Snapshot(b *chess.Board) BoardSnapshot {
	var s BoardSnapshot
	for _, p := range b.Pieces() {
		s.Pieces = append(s.Pieces, *p)
	}
	for _, p := range b.Captured {
		s.Captured = append(s.Captured, *p)
	}
	if b.EnPassantTarget != nil {
		ep := *b.EnPassantTarget
		s.EnPassantTarget = &ep
	}
	if b.LastMove != nil {
		m := *b.LastMove
		s.LastMove = &m
	}
	return s
}

// AssertUnchanged fails if b differs from the snapshot taken earlier.
func AssertUnchanged(t *testing.T, before BoardSnapshot, b *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	AssertEqual(t, Snapshot(b), before, msgAndArgs...)
}
