// Package output provides board and status rendering for the console.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// unicodeGlyphs maps colour and kind to the chess symbols of the Unicode block.
var unicodeGlyphs = map[chess.Colour]map[chess.PieceKind]string{
	chess.White: {
		chess.King: "♔", chess.Queen: "♕", chess.Rook: "♖",
		chess.Bishop: "♗", chess.Knight: "♘", chess.Pawn: "♙",
	},
	chess.Black: {
		chess.King: "♚", chess.Queen: "♛", chess.Rook: "♜",
		chess.Bishop: "♝", chess.Knight: "♞", chess.Pawn: "♟",
	},
}

// squareText returns the cell text for one square in the given style.
// ASCII cells are two characters wide; Unicode cells are one glyph.
func squareText(p *chess.Piece, pos chess.Position, style string) string {
	if style == config.StyleUnicode {
		if p == nil {
			return "·"
		}
		return unicodeGlyphs[p.Colour][p.Kind]
	}
	if p != nil {
		return p.ShortName()
	}
	if (pos.Row+pos.Col)%2 == 1 {
		return "##"
	}
	return "  "
}

// WriteBoard writes an 8x8 diagram of the board with rank numbers on the left
// and file letters underneath. Rank 8 is printed first.
func WriteBoard(w io.Writer, board *chess.Board, style string) error {
	sep := " "
	fileLabels := "  a  b  c  d  e  f  g  h"
	if style == config.StyleUnicode {
		fileLabels = "  a b c d e f g h"
	}

	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d", chess.BoardSize-row)
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.Pos(row, col)
			sb.WriteString(sep)
			sb.WriteString(squareText(board.Get(pos), pos, style))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(fileLabels)
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteCaptured lists the captured pieces of each colour in capture order.
// Nothing is written when no piece has been captured.
func WriteCaptured(w io.Writer, board *chess.Board) error {
	if len(board.Captured) == 0 {
		return nil
	}
	byColour := map[chess.Colour][]string{}
	for _, p := range board.Captured {
		byColour[p.Colour] = append(byColour[p.Colour], p.ShortName())
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if len(byColour[c]) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "Captured %s: %s\n", c, strings.Join(byColour[c], " ")); err != nil {
			return err
		}
	}
	return nil
}
