// Package chess provides core chess types and board storage.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the lower-case colour prefix used in short piece names.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// PawnDirection returns the row step a pawn of this colour advances by.
// White moves toward row 0, Black toward row 7.
func (c Colour) PawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row from which pawns of this colour may double-step.
func (c Colour) PawnStartRow() int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRow returns the opponent's back rank for this colour.
func (c Colour) PromotionRow() int {
	if c == White {
		return 0
	}
	return 7
}

// BackRow returns this colour's own back rank.
func (c Colour) BackRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a piece kind.
// It returns NoKind for anything that is not one of PNBRQK.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// PromotionKind maps a promotion letter to the piece a pawn becomes.
// Q, R, B and N are honoured (either case); anything else yields a Queen.
func PromotionKind(c byte) PieceKind {
	switch k := KindFromLetter(c); k {
	case Rook, Bishop, Knight, Queen:
		return k
	default:
		return Queen
	}
}

// PromotionKinds lists the piece kinds a pawn may promote to.
var PromotionKinds = []PieceKind{Queen, Rook, Bishop, Knight}

// CheckStatus indicates whether a side is in check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// String returns the string representation of a check status.
func (s CheckStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	default:
		return "none"
	}
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8
