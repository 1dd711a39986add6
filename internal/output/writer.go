package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// Position is everything a writer needs to describe the current game state.
type Position struct {
	ID      string
	Board   *chess.Board
	ToMove  chess.Colour
	History []chess.Move
}

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different formats (text diagram, JSON).
type PositionWriter interface {
	// WritePosition writes a single position to the output.
	WritePosition(pos Position) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error
}

// NewWriter returns the writer selected by cfg: JSON status lines when
// JSONStatus is set, a text diagram otherwise.
func NewWriter(w io.Writer, cfg *config.Config) PositionWriter {
	if cfg.JSONStatus {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes board diagrams.
type TextWriter struct {
	w            *bufio.Writer
	style        string
	showCaptured bool
}

// NewTextWriter creates a text writer using the board style of cfg.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:            bufio.NewWriter(w),
		style:        cfg.BoardStyle,
		showCaptured: cfg.ShowCaptured,
	}
}

// WritePosition writes the board diagram and, if enabled, the captured list.
func (tw *TextWriter) WritePosition(pos Position) error {
	if err := WriteBoard(tw.w, pos.Board, tw.style); err != nil {
		return err
	}
	if tw.showCaptured {
		if err := WriteCaptured(tw.w, pos.Board); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Flush flushes buffered diagram text.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

// JSONWriter writes one JSON status object per position.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WritePosition writes the position as a JSON status line.
func (jw *JSONWriter) WritePosition(pos Position) error {
	return WriteStatusJSON(jw.w, StatusToJSON(pos.ID, pos.Board, pos.ToMove, pos.History))
}

// Flush is a no-op; every status is written immediately.
func (jw *JSONWriter) Flush() error {
	return nil
}
