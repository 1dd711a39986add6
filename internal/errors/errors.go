// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and a structured error type that preserves
// move context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidNotation indicates a malformed algebraic square or move command.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrIllegalMove indicates a requested move that is not in the piece's legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvariantViolation indicates the engine was asked to do something the
	// legality filter would never allow, such as moving from an empty square.
	ErrInvariantViolation = errors.New("board invariant violation")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrNoPiece indicates the source square of a move is empty.
	ErrNoPiece = errors.New("no piece on square")

	// ErrWrongTurn indicates a piece of the side not on move was selected.
	ErrWrongTurn = errors.New("not your turn")

	// ErrPromotionRequired indicates a pawn move to the last rank lacks a promotion choice.
	ErrPromotionRequired = errors.New("promotion piece required")

	// ErrGameOver indicates a move was attempted after the game finished.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: ply number, the side to move and
// the move text as entered. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	PlyNum   int    // Ply the move would have been (0 if not applicable)
	Player   string // Side that attempted the move (if known)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.Player != "" {
		parts = append(parts, e.Player)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It mirrors the standard library so callers need only one errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
