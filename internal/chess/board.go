package chess

// Board holds the 8x8 grid of pieces together with the state needed to
// execute moves: captured pieces, the en-passant target and the last move.
// A Board is not safe for concurrent mutation.
type Board struct {
	grid [BoardSize][BoardSize]*Piece

	// Pieces removed from play, in capture order.
	Captured []*Piece

	// The square a pawn may capture onto en passant, valid for one move only.
	EnPassantTarget *Position

	// The most recently executed move.
	LastMove *Move
}

// NewEmptyBoard creates a board with no pieces.
func NewEmptyBoard() *Board {
	return &Board{}
}

// NewBoard creates a board in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places the standard starting position.
func (b *Board) SetupInitialPosition() {
	b.grid = [BoardSize][BoardSize]*Piece{}
	b.Captured = nil
	b.EnPassantTarget = nil
	b.LastMove = nil

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Place(NewPiece(Black, backRank[col], Pos(0, col)))
		b.Place(NewPiece(Black, Pawn, Pos(1, col)))
		b.Place(NewPiece(White, Pawn, Pos(6, col)))
		b.Place(NewPiece(White, backRank[col], Pos(7, col)))
	}
}

// Get returns the piece at pos, or nil if the square is empty or off the board.
func (b *Board) Get(pos Position) *Piece {
	if !pos.InBounds() {
		return nil
	}
	return b.grid[pos.Row][pos.Col]
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos Position) bool {
	return pos.InBounds() && b.grid[pos.Row][pos.Col] == nil
}

// Place puts the piece on the square named by its Pos, replacing any occupant.
// It is used for setup; moves go through the engine.
func (b *Board) Place(p *Piece) {
	if p == nil || !p.Pos.InBounds() {
		return
	}
	b.grid[p.Pos.Row][p.Pos.Col] = p
}

// Remove clears the square and returns the piece that was there.
func (b *Board) Remove(pos Position) *Piece {
	if !pos.InBounds() {
		return nil
	}
	p := b.grid[pos.Row][pos.Col]
	b.grid[pos.Row][pos.Col] = nil
	return p
}

// Relocate moves the piece at from to to, updating its stored position.
// Any occupant of to is overwritten; recording it as captured is the caller's job.
func (b *Board) Relocate(from, to Position) *Piece {
	p := b.Remove(from)
	if p == nil || !to.InBounds() {
		return p
	}
	p.Pos = to
	b.grid[to.Row][to.Col] = p
	return p
}

// Pieces returns all pieces on the board, scanning row by row from row 0.
func (b *Board) Pieces() []*Piece {
	var res []*Piece
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if p := b.grid[r][c]; p != nil {
				res = append(res, p)
			}
		}
	}
	return res
}

// PiecesOf returns all pieces of the given colour.
func (b *Board) PiecesOf(colour Colour) []*Piece {
	var res []*Piece
	for _, p := range b.Pieces() {
		if p.Colour == colour {
			res = append(res, p)
		}
	}
	return res
}

// FindKing returns the square of the given colour's king.
// The second result is false if no such king is on the board.
func (b *Board) FindKing(colour Colour) (Position, bool) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if p := b.grid[r][c]; p != nil && p.Kind == King && p.Colour == colour {
				return Pos(r, c), true
			}
		}
	}
	return Position{}, false
}

// Clone creates a fully independent deep copy of the board.
// No piece or mutable state is shared with the original.
func (b *Board) Clone() *Board {
	nb := &Board{}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if p := b.grid[r][c]; p != nil {
				nb.grid[r][c] = p.clone()
			}
		}
	}
	if len(b.Captured) > 0 {
		nb.Captured = make([]*Piece, len(b.Captured))
		for i, p := range b.Captured {
			nb.Captured[i] = p.clone()
		}
	}
	if b.EnPassantTarget != nil {
		ep := *b.EnPassantTarget
		nb.EnPassantTarget = &ep
	}
	if b.LastMove != nil {
		lm := *b.LastMove
		nb.LastMove = &lm
	}
	return nb
}
