package chess

import (
	"fmt"
)

// Piece is one piece of a snapshot. It is owned by the square it occupies
// and is rebuilt, never moved, when a new snapshot arrives.
type Piece struct {
	Code   string // Two-character identity code, e.g. "wR"
	Seat   Seat
	Role   Role
	Square *Square

	// Candidate squares, rebuilt by each analysis pass.
	Moves   []*Square
	Attacks []*Square

	home    []Coord
	moves   Rays
	attacks Rays
}

// NewPiece builds a piece from its identity code on the given square.
func NewPiece(code string, sq *Square) (*Piece, error) {
	seat, role, err := ParseCode(code)
	if err != nil {
		return nil, err
	}

	p := &Piece{
		Code:   code,
		Seat:   seat,
		Role:   role,
		Square: sq,
	}
	if seat.Playing() {
		for _, local := range role.home(seat) {
			c, err := seat.Orient(local)
			if err != nil {
				return nil, err
			}
			p.home = append(p.home, c)
		}
	}
	p.moves, p.attacks = role.rays(p.Moved())
	return p, nil
}

// Playing reports whether the piece belongs to a live seat.
func (p *Piece) Playing() bool {
	return p.Seat.Playing()
}

// Home returns the piece's starting squares on the board, oriented for its seat.
func (p *Piece) Home() []Coord {
	return p.home
}

// Moved reports whether the piece stands on none of its home squares.
func (p *Piece) Moved() bool {
	if p.Square == nil {
		return true
	}
	for _, h := range p.home {
		if h == p.Square.Coord {
			return false
		}
	}
	return true
}

// MoveRays returns the vectors along which the piece relocates.
func (p *Piece) MoveRays() Rays {
	return p.moves
}

// AttackRays returns the vectors along which the piece attacks.
func (p *Piece) AttackRays() Rays {
	return p.attacks
}

// ResetCandidates clears the move and attack candidate lists.
func (p *Piece) ResetCandidates() {
	p.Moves = nil
	p.Attacks = nil
}

// Allied reports whether two pieces share a seat.
func (p *Piece) Allied(other *Piece) bool {
	return other != nil && p.Seat == other.Seat
}

// String implements fmt.Stringer.
func (p *Piece) String() string {
	if p.Square == nil {
		return fmt.Sprintf("%s %s", p.Seat, p.Role)
	}
	return fmt.Sprintf("%s %s@%s", p.Seat, p.Role, p.Square.Code())
}
