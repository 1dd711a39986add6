package chess

// Piece is a piece on the board. Pieces are owned by the Board that holds
// them; Pos always equals the grid square the piece occupies.
type Piece struct {
	Colour   Colour
	Kind     PieceKind
	Pos      Position
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind PieceKind, pos Position) *Piece {
	return &Piece{Colour: colour, Kind: kind, Pos: pos}
}

// ShortName returns the two character name used in board diagrams, e.g. "wP".
func (p *Piece) ShortName() string {
	return string([]byte{p.Colour.Letter(), p.Kind.Letter()})
}

// String implements fmt.Stringer.
func (p *Piece) String() string {
	if p == nil {
		return "--"
	}
	return p.ShortName()
}

// clone returns an independent copy of the piece.
func (p *Piece) clone() *Piece {
	c := *p
	return &c
}
