package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestPositionAlgebraicRoundTrip(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := Pos(row, col)
			got, err := FromAlgebraic(p.ToAlgebraic())
			if err != nil {
				t.Fatalf("FromAlgebraic(%q) error: %v", p.ToAlgebraic(), err)
			}
			if got != p {
				t.Errorf("FromAlgebraic(ToAlgebraic(%v)) = %v; want %v", p, got, p)
			}
		}
	}
}

func TestFromAlgebraic(t *testing.T) {
	tests := []struct {
		in   string
		want Position
	}{
		{"A1", Pos(7, 0)},
		{"a1", Pos(7, 0)},
		{"H8", Pos(0, 7)},
		{"e2", Pos(6, 4)},
		{"E4", Pos(4, 4)},
		{"d5", Pos(3, 3)},
		{" c6 ", Pos(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FromAlgebraic(tt.in)
			if err != nil {
				t.Fatalf("FromAlgebraic(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("FromAlgebraic(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromAlgebraic_Invalid(t *testing.T) {
	for _, in := range []string{"", "E", "E22", "I1", "A0", "A9", "11", "EE", "@1", "e-"} {
		t.Run(in, func(t *testing.T) {
			_, err := FromAlgebraic(in)
			if !errors.Is(err, chesserrors.ErrInvalidNotation) {
				t.Errorf("FromAlgebraic(%q) error = %v; want ErrInvalidNotation", in, err)
			}
		})
	}
}

func TestPositionInBounds(t *testing.T) {
	tests := []struct {
		pos  Position
		want bool
	}{
		{Pos(0, 0), true},
		{Pos(7, 7), true},
		{Pos(-1, 0), false},
		{Pos(0, -1), false},
		{Pos(8, 0), false},
		{Pos(0, 8), false},
	}
	for _, tt := range tests {
		if got := tt.pos.InBounds(); got != tt.want {
			t.Errorf("%v.InBounds() = %v; want %v", tt.pos, got, tt.want)
		}
	}
}

func TestMoveString(t *testing.T) {
	m := NewMove(MustAlgebraic("e2"), MustAlgebraic("e4"))
	if got := m.String(); got != "E2-E4" {
		t.Errorf("String() = %q; want %q", got, "E2-E4")
	}
	m = Move{From: MustAlgebraic("e7"), To: MustAlgebraic("e8"), Promotion: Knight}
	if got := m.String(); got != "E7-E8=N" {
		t.Errorf("String() = %q; want %q", got, "E7-E8=N")
	}
}

func TestPromotionKind(t *testing.T) {
	tests := []struct {
		in   byte
		want PieceKind
	}{
		{'Q', Queen},
		{'r', Rook},
		{'B', Bishop},
		{'n', Knight},
		{'K', Queen},
		{'P', Queen},
		{'x', Queen},
	}
	for _, tt := range tests {
		if got := PromotionKind(tt.in); got != tt.want {
			t.Errorf("PromotionKind(%c) = %v; want %v", tt.in, got, tt.want)
		}
	}
}
