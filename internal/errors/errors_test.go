package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidNotation", ErrInvalidNotation, ErrInvalidNotation},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvariantViolation", ErrInvariantViolation, ErrInvariantViolation},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrNoPiece", ErrNoPiece, ErrNoPiece},
		{"ErrWrongTurn", ErrWrongTurn, ErrWrongTurn},
		{"ErrPromotionRequired", ErrPromotionRequired, ErrPromotionRequired},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrInvalidNotation) {
		t.Error("ErrIllegalMove should not match ErrInvalidNotation")
	}
	if errors.Is(ErrInvariantViolation, ErrIllegalMove) {
		t.Error("ErrInvariantViolation should not match ErrIllegalMove")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("square %q: %w", "Z9", ErrInvalidNotation)

	if !errors.Is(wrapped, ErrInvalidNotation) {
		t.Errorf("errors.Is(wrapped, ErrInvalidNotation) = false, want true")
	}
	if !Is(wrapped, ErrInvalidNotation) {
		t.Errorf("Is(wrapped, ErrInvalidNotation) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrIllegalMove,
				PlyNum:   12,
				Player:   "White",
				MoveText: "E1 G1",
			},
			contains: []string{"ply 12", "White", "E1 G1", "illegal move"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err: ErrWrongTurn,
			},
			contains: []string{"not your turn"},
		},
		{
			name:     "no error",
			err:      &MoveError{MoveText: "O-O"},
			contains: []string{"O-O"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:    ErrPromotionRequired,
		PlyNum: 31,
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrPromotionRequired) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrPromotionRequired)
	}

	if !errors.Is(moveErr, ErrPromotionRequired) {
		t.Error("errors.Is(moveErr, ErrPromotionRequired) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrIllegalMove,
		PlyNum:   24,
		MoveText: "O-O-O",
	}

	wrapped := fmt.Errorf("play failed: %w", moveErr)

	var extractedErr *MoveError
	if !As(wrapped, &extractedErr) {
		t.Fatal("As() could not extract MoveError")
	}

	if extractedErr.PlyNum != 24 {
		t.Errorf("extractedErr.PlyNum = %d, want 24", extractedErr.PlyNum)
	}
	if extractedErr.MoveText != "O-O-O" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "O-O-O")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvariantViolation, "no piece at %s", "E4")

	if !errors.Is(wrapped, ErrInvariantViolation) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "no piece at E4") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
