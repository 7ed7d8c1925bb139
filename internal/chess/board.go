package chess

import (
	"fmt"

	"github.com/lgbarn/fourplay-go/internal/errors"
)

// Square is one cell of the grid together with the candidates that the
// analysis pass accumulated for it.
type Square struct {
	Coord
	Piece *Piece

	Movers    []*Piece // Pieces with a move candidate on this square
	Attackers []*Piece // Pieces with an attack candidate on this square
}

// HasPiece reports whether the square is occupied.
func (s *Square) HasPiece() bool {
	return s.Piece != nil
}

// ResetCandidates clears the accumulated mover and attacker lists.
func (s *Square) ResetCandidates() {
	s.Movers = nil
	s.Attackers = nil
}

// Board is the complete 14x14 grid of one snapshot.
type Board struct {
	// Squares[row][col], row 0 is rank 1 and col 0 is file a.
	Squares [BoardSize][BoardSize]*Square
}

// NewBoard creates a board with every square empty.
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Squares[row][col] = &Square{Coord: Coord{Col: col, Row: row}}
		}
	}
	return b
}

// Valid reports whether c lies on the grid.
func (b *Board) Valid(c Coord) bool {
	return c.Valid()
}

// At returns the square at c, or nil when c is off the grid.
func (b *Board) At(c Coord) *Square {
	if !c.Valid() {
		return nil
	}
	return b.Squares[c.Row][c.Col]
}

// Square looks up a square by its algebraic code.
func (b *Board) Square(code string) (*Square, error) {
	c, err := ParseSquare(code)
	if err != nil {
		return nil, err
	}
	return b.At(c), nil
}

// Place puts a piece built from pieceCode on the square named by code.
// Corner cells never hold a piece.
func (b *Board) Place(code, pieceCode string) (*Piece, error) {
	sq, err := b.Square(code)
	if err != nil {
		return nil, err
	}
	if !sq.Accessible() {
		return nil, fmt.Errorf("place %s on %s: %w", pieceCode, code, errors.ErrInaccessibleSquare)
	}
	p, err := NewPiece(pieceCode, sq)
	if err != nil {
		return nil, err
	}
	sq.Piece = p
	return p, nil
}

// Each calls fn for every square in row-major order.
func (b *Board) Each(fn func(sq *Square)) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			fn(b.Squares[row][col])
		}
	}
}

// Pieces returns every piece on the board in row-major order.
func (b *Board) Pieces() []*Piece {
	var pieces []*Piece
	b.Each(func(sq *Square) {
		if sq.Piece != nil {
			pieces = append(pieces, sq.Piece)
		}
	})
	return pieces
}

// ResetCandidates clears candidate lists on every square and piece.
func (b *Board) ResetCandidates() {
	b.Each(func(sq *Square) {
		sq.ResetCandidates()
		if sq.Piece != nil {
			sq.Piece.ResetCandidates()
		}
	})
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	return len(b.Pieces())
}
