package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castlingRight ties a FEN castling letter to the rook square it refers to.
type castlingRight struct {
	colour chess.Colour
	rookSq chess.Position
}

var castlingLetters = map[rune]castlingRight{
	'K': {chess.White, chess.Pos(7, 7)},
	'Q': {chess.White, chess.Pos(7, 0)},
	'k': {chess.Black, chess.Pos(0, 7)},
	'q': {chess.Black, chess.Pos(0, 0)},
}

// kingHome is the square a king must stand on to keep castling rights.
var kingHome = map[chess.Colour]chess.Position{
	chess.White: chess.Pos(7, 4),
	chess.Black: chess.Pos(0, 4),
}

// ParseFEN creates a board from a FEN string and returns it together with the
// side to move. Only the piece placement field is required. Castling rights
// are translated into the moved flags of kings and rooks: a king or corner
// rook counts as unmoved only if a matching right is listed (or the field is
// absent). Clock fields are accepted and ignored.
func ParseFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewEmptyBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, chess.White, err
	}

	if err := parseEnPassant(board, parts); err != nil {
		return nil, chess.White, err
	}

	return board, toMove, nil
}

// MustParseFEN is like ParseFEN but panics on error and drops the side to move.
// It is intended for fixed positions in tests and tables.
func MustParseFEN(fen string) *chess.Board {
	board, _, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected 8 ranks, got %d: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			case c > unicode.MaxASCII:
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.NoKind {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}

				p := chess.NewPiece(colour, kind, chess.Pos(row, col))
				if kind == chess.Pawn {
					p.HasMoved = row != colour.PawnStartRow()
				}
				board.Place(p)
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field, defaulting to White.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights marks kings and rooks as moved unless the castling
// availability field keeps them eligible.
func parseCastlingRights(board *chess.Board, parts []string) error {
	unmovedRooks := map[chess.Position]bool{}
	unmovedKings := map[chess.Colour]bool{}

	if len(parts) < 3 {
		for _, right := range castlingLetters {
			unmovedRooks[right.rookSq] = true
			unmovedKings[right.colour] = true
		}
	} else if parts[2] != "-" {
		for _, c := range parts[2] {
			right, ok := castlingLetters[c]
			if !ok {
				return fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrInvalidFEN)
			}
			unmovedRooks[right.rookSq] = true
			unmovedKings[right.colour] = true
		}
	}

	for _, p := range board.Pieces() {
		switch p.Kind {
		case chess.King:
			p.HasMoved = !(unmovedKings[p.Colour] && p.Pos == kingHome[p.Colour])
		case chess.Rook:
			p.HasMoved = !(unmovedRooks[p.Pos] && p.Pos.Row == p.Colour.BackRow())
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.FromAlgebraic(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	board.EnPassantTarget = &sq
	return nil
}

// Placement returns the piece placement field of the board in FEN form.
func Placement(board *chess.Board) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Get(chess.Pos(row, col))
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pieceFENLetter(p))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// pieceFENLetter returns the FEN letter for a piece: upper case for White.
func pieceFENLetter(p *chess.Piece) byte {
	letter := p.Kind.Letter()
	if p.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}
