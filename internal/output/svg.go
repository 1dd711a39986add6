package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

const (
	svgSquare = 48
	svgMargin = 20
)

var (
	svgLight = "fill:#f0d9b5"
	svgDark  = "fill:#b58863"
	svgLabel = "font-family:sans-serif;font-size:12px;text-anchor:middle;fill:#333"
	svgPiece = "font-family:serif;font-size:36px;text-anchor:middle;dominant-baseline:central"
)

// WriteSVG draws the board as an SVG diagram with White at the bottom.
func WriteSVG(w io.Writer, board *chess.Board) {
	size := svgMargin*2 + svgSquare*chess.BoardSize
	canvas := svg.New(w)
	canvas.Start(size, size)

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			x := svgMargin + col*svgSquare
			y := svgMargin + row*svgSquare
			style := svgLight
			if (row+col)%2 == 1 {
				style = svgDark
			}
			canvas.Rect(x, y, svgSquare, svgSquare, style)

			if p := board.Get(chess.Pos(row, col)); p != nil {
				canvas.Text(x+svgSquare/2, y+svgSquare/2, unicodeGlyphs[p.Colour][p.Kind], svgPiece)
			}
		}
	}

	for i := 0; i < chess.BoardSize; i++ {
		file := string(rune('a' + i))
		rank := fmt.Sprintf("%d", chess.BoardSize-i)
		canvas.Text(svgMargin+i*svgSquare+svgSquare/2, size-svgMargin/3, file, svgLabel)
		canvas.Text(svgMargin/2, svgMargin+i*svgSquare+svgSquare/2, rank, svgLabel)
	}

	canvas.End()
}
