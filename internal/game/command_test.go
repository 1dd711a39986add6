package game

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  CommandKind
		from  string
		to    string
		promo chess.PieceKind
	}{
		{"spaced upper case", "E2 E4", CmdMove, "e2", "e4", chess.NoKind},
		{"compact", "e2e4", CmdMove, "e2", "e4", chess.NoKind},
		{"dashed", "g1-f3", CmdMove, "g1", "f3", chess.NoKind},
		{"surrounding space", "  b1 c3 \n", CmdMove, "b1", "c3", chess.NoKind},
		{"promotion queen", "E7 E8=Q", CmdMove, "e7", "e8", chess.Queen},
		{"promotion knight lower", "a2a1=n", CmdMove, "a2", "a1", chess.Knight},
		{"unknown promotion letter", "b7 b8=X", CmdMove, "b7", "b8", chess.Queen},
		{"kingside", "O-O", CmdCastleKingside, "", "", chess.NoKind},
		{"kingside zeros", "0-0", CmdCastleKingside, "", "", chess.NoKind},
		{"queenside", "o-o-o", CmdCastleQueenside, "", "", chess.NoKind},
		{"queenside zeros", "0-0-0", CmdCastleQueenside, "", "", chess.NoKind},
		{"quit", "quit", CmdQuit, "", "", chess.NoKind},
		{"quit short", "Q", CmdQuit, "", "", chess.NoKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.input)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, cmd.Kind, tt.kind)
			if tt.kind != CmdMove {
				return
			}
			want := testutil.Move(t, tt.from, tt.to)
			want.Promotion = tt.promo
			testutil.AssertEqual(t, cmd.Move, want)
		})
	}
}

func TestParseCommand_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"e2",
		"e2 e4 e5",
		"i2 i4",
		"e9 e4",
		"e2e",
		"e7 e8=",
		"hello",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseCommand(in)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)
		})
	}
}

func TestParseCommand_KeepsText(t *testing.T) {
	cmd, err := ParseCommand("  e2 e4  ")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cmd.Text, "e2 e4")
}
