package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// play executes a sequence of "e2e4" style moves, failing the test on error.
func play(t *testing.T, b *chess.Board, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if err := ExecuteMove(b, testutil.Move(t, m[:2], m[2:4])); err != nil {
			t.Fatalf("ExecuteMove(%s): %v", m, err)
		}
	}
}

func TestExecuteMove_Simple(t *testing.T) {
	b := chess.NewBoard()
	play(t, b, "g1f3")

	n := b.Get(testutil.Square(t, "f3"))
	if n == nil || n.Kind != chess.Knight || n.Colour != chess.White {
		t.Fatalf("f3 = %v; want white knight", n)
	}
	testutil.AssertNil(t, b.Get(testutil.Square(t, "g1")))
	testutil.AssertTrue(t, n.HasMoved, "knight should be marked moved")
	testutil.AssertEqual(t, *b.LastMove, testutil.Move(t, "g1", "f3"))
	testutil.AssertEqual(t, len(b.Captured), 0)
}

func TestExecuteMove_EnPassantTarget(t *testing.T) {
	b := chess.NewBoard()

	play(t, b, "e2e4")
	if b.EnPassantTarget == nil {
		t.Fatal("EnPassantTarget = nil after double step")
	}
	testutil.AssertEqual(t, *b.EnPassantTarget, chess.Pos(5, 4))

	play(t, b, "g8f6")
	testutil.AssertNil(t, b.EnPassantTarget, "target must expire after any other move")

	play(t, b, "d2d3")
	testutil.AssertNil(t, b.EnPassantTarget, "single step sets no target")

	play(t, b, "c7c5")
	testutil.AssertEqual(t, *b.EnPassantTarget, testutil.Square(t, "c6"))
}

func TestExecuteMove_Capture(t *testing.T) {
	b := chess.NewBoard()
	play(t, b, "e2e4", "d7d5", "e4d5")

	if len(b.Captured) != 1 {
		t.Fatalf("len(Captured) = %d; want 1", len(b.Captured))
	}
	c := b.Captured[0]
	testutil.AssertEqual(t, c.Colour, chess.Black)
	testutil.AssertEqual(t, c.Kind, chess.Pawn)
	testutil.AssertEqual(t, b.Get(testutil.Square(t, "d5")).Colour, chess.White)
}

func TestExecuteMove_EnPassant(t *testing.T) {
	b := testutil.BoardWith(t, "wKe1", "bKe8", "wPd5", "bPc7")

	play(t, b, "c7c5")
	testutil.AssertEqual(t, *b.EnPassantTarget, testutil.Square(t, "c6"))

	legal := LegalMovesAt(b, testutil.Square(t, "d5"))
	testutil.AssertSquares(t, legal, testutil.Squares(t, "d6", "c6"))

	testutil.AssertNoError(t, ApplyMove(b, testutil.Move(t, "d5", "c6")))

	testutil.AssertNil(t, b.Get(testutil.Square(t, "c5")), "captured pawn must leave c5")
	p := b.Get(testutil.Square(t, "c6"))
	if p == nil || p.Kind != chess.Pawn || p.Colour != chess.White {
		t.Fatalf("c6 = %v; want white pawn", p)
	}
	if len(b.Captured) != 1 || b.Captured[0].Colour != chess.Black || b.Captured[0].Kind != chess.Pawn {
		t.Errorf("Captured = %v; want [bP]", b.Captured)
	}
	testutil.AssertNil(t, b.EnPassantTarget)
}

func TestExecuteMove_EnPassantExpires(t *testing.T) {
	b := testutil.BoardWith(t, "wKe1", "bKe8", "wPd5", "bPc7")
	play(t, b, "c7c5", "e1e2", "e8e7")

	legal := LegalMovesAt(b, testutil.Square(t, "d5"))
	testutil.AssertSquares(t, legal, testutil.Squares(t, "d6"))
}

func TestExecuteMove_NoEnPassantOnOwnDoubleStep(t *testing.T) {
	b := testutil.BoardWith(t, "wKe1", "bKe8", "wPd2", "wPe2")
	play(t, b, "e2e4")

	got := PossibleMoves(b, b.Get(testutil.Square(t, "d2")))
	testutil.AssertSquares(t, got, testutil.Squares(t, "d3", "d4"))
}

func TestExecuteMove_Castling(t *testing.T) {
	tests := []struct {
		name     string
		move     string
		kingTo   string
		rookFrom string
		rookTo   string
	}{
		{"white kingside", "e1g1", "g1", "h1", "f1"},
		{"white queenside", "e1c1", "c1", "a1", "d1"},
		{"black kingside", "e8g8", "g8", "h8", "f8"},
		{"black queenside", "e8c8", "c8", "a8", "d8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.BoardWith(t, "wKe1", "wRa1", "wRh1", "bKe8", "bRa8", "bRh8")
			ep := testutil.Square(t, "d6")
			b.EnPassantTarget = &ep

			play(t, b, tt.move)

			king := b.Get(testutil.Square(t, tt.kingTo))
			if king == nil || king.Kind != chess.King {
				t.Fatalf("%s = %v; want king", tt.kingTo, king)
			}
			rook := b.Get(testutil.Square(t, tt.rookTo))
			if rook == nil || rook.Kind != chess.Rook {
				t.Fatalf("%s = %v; want rook", tt.rookTo, rook)
			}
			testutil.AssertNil(t, b.Get(testutil.Square(t, tt.rookFrom)))
			testutil.AssertNil(t, b.Get(testutil.Square(t, tt.move[:2])))
			testutil.AssertTrue(t, king.HasMoved, "king moved flag")
			testutil.AssertTrue(t, rook.HasMoved, "rook moved flag")
			testutil.AssertNil(t, b.EnPassantTarget)
			testutil.AssertEqual(t, b.LastMove.String(), testutil.Move(t, tt.move[:2], tt.move[2:]).String())
		})
	}
}

func TestExecuteMove_Promotion(t *testing.T) {
	tests := []struct {
		name      string
		promotion chess.PieceKind
		want      chess.PieceKind
	}{
		{"queen", chess.Queen, chess.Queen},
		{"rook", chess.Rook, chess.Rook},
		{"bishop", chess.Bishop, chess.Bishop},
		{"knight", chess.Knight, chess.Knight},
		{"king letter falls back to queen", chess.King, chess.Queen},
		{"pawn letter falls back to queen", chess.Pawn, chess.Queen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.BoardWith(t, "wKe1", "bKe8", "wPa7")
			move := chess.Move{From: testutil.Square(t, "a7"), To: testutil.Square(t, "a8"), Promotion: tt.promotion}

			testutil.AssertNoError(t, ExecuteMove(b, move))

			p := b.Get(testutil.Square(t, "a8"))
			if p == nil {
				t.Fatal("a8 is empty after promotion")
			}
			testutil.AssertEqual(t, p.Kind, tt.want)
			testutil.AssertEqual(t, p.Colour, chess.White)
			testutil.AssertEqual(t, p.Pos, testutil.Square(t, "a8"))
			testutil.AssertTrue(t, p.HasMoved)
			testutil.AssertEqual(t, len(b.Captured), 0, "promoted pawn is not a capture")
		})
	}
}

func TestExecuteMove_PromotionWithCapture(t *testing.T) {
	b := testutil.BoardWith(t, "wKe1", "bKe8", "bPb2", "wRa1")
	move := chess.Move{From: testutil.Square(t, "b2"), To: testutil.Square(t, "a1"), Promotion: chess.Knight}

	testutil.AssertNoError(t, ApplyMove(b, move))

	p := b.Get(testutil.Square(t, "a1"))
	testutil.AssertEqual(t, p.Kind, chess.Knight)
	testutil.AssertEqual(t, p.Colour, chess.Black)
	if len(b.Captured) != 1 || b.Captured[0].Kind != chess.Rook {
		t.Errorf("Captured = %v; want [wR]", b.Captured)
	}
}

func TestExecuteMove_InvariantViolations(t *testing.T) {
	tests := []struct {
		name  string
		specs []string
		move  chess.Move
	}{
		{"empty source", []string{"wKe1", "bKe8"}, chess.NewMove(chess.Pos(4, 4), chess.Pos(3, 4))},
		{"same square", []string{"wKe1", "bKe8"}, chess.NewMove(chess.Pos(7, 4), chess.Pos(7, 4))},
		{"off board", []string{"wKe1", "bKe8"}, chess.NewMove(chess.Pos(7, 4), chess.Pos(8, 4))},
		{"castle without rook", []string{"wKe1", "bKe8"}, chess.NewMove(chess.Pos(7, 4), chess.Pos(7, 6))},
		{"castle with knight in corner", []string{"wKe1", "wNa1", "bKe8"}, chess.NewMove(chess.Pos(7, 4), chess.Pos(7, 2))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.BoardWith(t, tt.specs...)
			before := testutil.Snapshot(b)

			err := ExecuteMove(b, tt.move)
			testutil.AssertErrorIs(t, err, errors.ErrInvariantViolation)
			testutil.AssertUnchanged(t, before, b)
		})
	}
}
