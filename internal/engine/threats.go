package engine

import "github.com/lgbarn/fourplay-go/internal/chess"

// Threat classifies one square from the point of view of a local seat.
type Threat struct {
	Square  *chess.Square
	Friends []*chess.Piece
	Enemies []*chess.Piece
}

// Friendly reports whether friends are at least as many as enemies.
func (t Threat) Friendly() bool {
	return len(t.Friends) >= len(t.Enemies)
}

// ThreatAt partitions the attackers of sq into pieces of seat me and the rest.
func ThreatAt(sq *chess.Square, me chess.Seat) Threat {
	t := Threat{Square: sq}
	for _, p := range sq.Attackers {
		if p.Seat == me {
			t.Friends = append(t.Friends, p)
		} else {
			t.Enemies = append(t.Enemies, p)
		}
	}
	return t
}

// Threats returns the threat classification of every accessible square in
// row-major order. The board must already be analysed.
func Threats(board *chess.Board, me chess.Seat) []Threat {
	out := make([]Threat, 0, 160)
	board.Each(func(sq *chess.Square) {
		if sq.Accessible() {
			out = append(out, ThreatAt(sq, me))
		}
	})
	return out
}

// Covered reports whether any piece of seat me attacks sq.
func Covered(sq *chess.Square, me chess.Seat) bool {
	for _, p := range sq.Attackers {
		if p.Seat == me {
			return true
		}
	}
	return false
}

// Enclosed reports whether every diagonal neighbour of sq that lies on the
// grid holds a piece. Corner cells never hold one, so a square touching a
// corner block is never enclosed.
func Enclosed(board *chess.Board, sq *chess.Square) bool {
	for _, d := range [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		n := board.At(chess.Coord{Col: sq.Col + d[0], Row: sq.Row + d[1]})
		if n == nil {
			continue
		}
		if !n.HasPiece() {
			return false
		}
	}
	return true
}
