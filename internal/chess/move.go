package chess

// Move describes a from/to pair with an optional promotion choice.
// Promotion is NoKind unless a pawn is moving onto its promotion row.
type Move struct {
	From      Position
	To        Position
	Promotion PieceKind
}

// NewMove creates a move without a promotion choice.
func NewMove(from, to Position) Move {
	return Move{From: from, To: to}
}

// HasPromotion reports whether a promotion kind was supplied.
func (m Move) HasPromotion() bool {
	return m.Promotion != NoKind
}

// String returns the move as "E2-E4" or "E7-E8=Q".
func (m Move) String() string {
	s := m.From.String() + "-" + m.To.String()
	if m.HasPromotion() {
		s += "=" + string(m.Promotion.Letter())
	}
	return s
}
