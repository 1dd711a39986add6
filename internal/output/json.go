package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONStatus represents the state of a game in JSON format.
type JSONStatus struct {
	ID        string     `json:"id,omitempty"`
	Turn      string     `json:"turn"` // "white" or "black"
	Check     bool       `json:"check"`
	Checkmate bool       `json:"checkmate"`
	Placement string     `json:"placement"`
	LastMove  *JSONMove  `json:"lastMove,omitempty"`
	EnPassant string     `json:"enPassant,omitempty"`
	Captured  []string   `json:"captured,omitempty"`
	Moves     []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// MoveToJSON converts a move to its JSON form.
func MoveToJSON(m chess.Move) JSONMove {
	jm := JSONMove{
		From: strings.ToLower(m.From.ToAlgebraic()),
		To:   strings.ToLower(m.To.ToAlgebraic()),
	}
	if m.HasPromotion() {
		jm.Promotion = string(m.Promotion.Letter())
	}
	return jm
}

// StatusToJSON describes the board from the point of view of the side to
// move. history, if given, is listed in order under "moves".
func StatusToJSON(id string, board *chess.Board, toMove chess.Colour, history []chess.Move) *JSONStatus {
	status := engine.Status(board, toMove)
	js := &JSONStatus{
		ID:        id,
		Turn:      strings.ToLower(toMove.String()),
		Check:     status != chess.NoCheck,
		Checkmate: status == chess.Checkmate,
		Placement: engine.Placement(board),
	}

	if board.LastMove != nil {
		lm := MoveToJSON(*board.LastMove)
		js.LastMove = &lm
	}
	if board.EnPassantTarget != nil {
		js.EnPassant = strings.ToLower(board.EnPassantTarget.ToAlgebraic())
	}
	for _, p := range board.Captured {
		js.Captured = append(js.Captured, p.ShortName())
	}
	for _, m := range history {
		js.Moves = append(js.Moves, MoveToJSON(m))
	}
	return js
}

// WriteStatusJSON writes a single status object as one line of JSON.
func WriteStatusJSON(w io.Writer, status *JSONStatus) error {
	return json.NewEncoder(w).Encode(status)
}
