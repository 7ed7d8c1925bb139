package chess

// Movement tables, authored in the Red frame: +dy is forward.
var (
	orthogonal = []Vector{Slide(1, 0), Slide(-1, 0), Slide(0, 1), Slide(0, -1)}
	diagonal   = []Vector{Slide(1, 1), Slide(1, -1), Slide(-1, 1), Slide(-1, -1)}
	royal      = append(append([]Vector{}, orthogonal...), diagonal...)

	adjacent = []Vector{
		Step(1, 0), Step(-1, 0), Step(0, 1), Step(0, -1),
		Step(1, 1), Step(1, -1), Step(-1, 1), Step(-1, -1),
	}
	leaps = []Vector{
		Step(2, 1), Step(2, -1), Step(-2, 1), Step(-2, -1),
		Step(1, 2), Step(1, -2), Step(-1, 2), Step(-1, -2),
	}

	pawnPush    = []Vector{Slide(0, 1)}
	pawnCapture = []Vector{Step(1, 1), Step(-1, 1)}
)

// home returns the role's starting squares in the Red frame. Red and
// Yellow sit opposite each other and share a king/queen layout; Blue and
// Green have the two swapped.
func (r Role) home(s Seat) []Coord {
	backRank := func(cols ...int) []Coord {
		out := make([]Coord, len(cols))
		for i, c := range cols {
			out[i] = Coord{Col: c, Row: 0}
		}
		return out
	}
	redAxis := s == Red || s == Yellow

	switch r {
	case Rook:
		return backRank(3, 10)
	case Knight:
		return backRank(4, 9)
	case Bishop:
		return backRank(5, 8)
	case Queen:
		if redAxis {
			return backRank(6)
		}
		return backRank(7)
	case King:
		if redAxis {
			return backRank(7)
		}
		return backRank(6)
	case Pawn:
		out := make([]Coord, 0, 8)
		for c := 3; c <= 10; c++ {
			out = append(out, Coord{Col: c, Row: 1})
		}
		return out
	}
	return nil
}

// rays builds fresh move and attack groups for the role. A radius max of
// 0 means unbounded.
func (r Role) rays(moved bool) (moves, attacks Rays) {
	group := func(vectors []Vector, max int) Rays {
		return Rays{Vectors: vectors, Radius: NewRadius(max)}
	}

	switch r {
	case Rook:
		return group(orthogonal, 0), group(orthogonal, 0)
	case Bishop:
		return group(diagonal, 0), group(diagonal, 0)
	case Queen:
		return group(royal, 0), group(royal, 0)
	case King:
		return group(adjacent, 1), group(adjacent, 1)
	case Knight:
		return group(leaps, 1), group(leaps, 1)
	case Pawn:
		push := 2
		if moved {
			push = 1
		}
		return group(pawnPush, push), group(pawnCapture, 1)
	}
	return Rays{}, Rays{}
}
