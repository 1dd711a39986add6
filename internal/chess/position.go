package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Position is a board coordinate. Row 0 is Black's back rank (rank 8),
// column 0 is the a-file.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for constructing a Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// InBounds reports whether the position lies on the board.
// It must hold before the position is used to index the grid.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Offset returns the position shifted by the given row and column deltas.
// The result may be off the board.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// ToAlgebraic converts the position to upper-case algebraic form, e.g. "E2".
func (p Position) ToAlgebraic() string {
	return string([]byte{byte('A' + p.Col), byte('0' + (BoardSize - p.Row))})
}

// String implements fmt.Stringer.
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return p.ToAlgebraic()
}

// FromAlgebraic parses a two character square such as "e2" or "E2".
// The file must be A-H and the rank 1-8; anything else wraps ErrInvalidNotation.
func FromAlgebraic(s string) (Position, error) {
	sq := strings.ToUpper(strings.TrimSpace(s))
	if len(sq) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidNotation)
	}
	file, rank := sq[0], sq[1]
	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidNotation)
	}
	return Position{Row: BoardSize - int(rank-'0'), Col: int(file - 'A')}, nil
}

// MustAlgebraic is like FromAlgebraic but panics on malformed input.
// It is intended for constant squares in tables and tests.
func MustAlgebraic(s string) Position {
	p, err := FromAlgebraic(s)
	if err != nil {
		panic(err)
	}
	return p
}
