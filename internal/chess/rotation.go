package chess

import (
	"fmt"

	"github.com/lgbarn/fourplay-go/internal/errors"
)

// Transform projects a local delta (dx, dy) into the global frame, using
// origin as the centre of rotation. Red is the identity; each following
// seat turns the plane by a further 90 degrees.
//
// Transform is a pure function of its arguments and never consults a board.
func (s Seat) Transform(origin Coord, dx, dy int) (Coord, error) {
	switch s {
	case Red:
		return Coord{Col: origin.Col + dx, Row: origin.Row + dy}, nil
	case Blue:
		return Coord{Col: origin.Col + dy, Row: origin.Row - dx}, nil
	case Yellow:
		return Coord{Col: origin.Col - dx, Row: origin.Row - dy}, nil
	case Green:
		return Coord{Col: origin.Col - dy, Row: origin.Row + dx}, nil
	case Dead:
		return Coord{}, fmt.Errorf("rotate for %s seat: %w", s, errors.ErrUnsupportedOperation)
	}
	return Coord{}, fmt.Errorf("seat %d: %w", int(s), errors.ErrUnrecognizedCode)
}

// Rotate evaluates v at radius and projects the result from origin.
func (s Seat) Rotate(origin Coord, v Vector, radius int) (Coord, error) {
	dx, dy := v.At(radius)
	return s.Transform(origin, dx, dy)
}

// Orient maps a square authored in the Red frame onto the board as seen
// from this seat, rotating about the centre of the grid. Doubled
// coordinates keep the half-square centre on integers.
func (s Seat) Orient(local Coord) (Coord, error) {
	const centre = BoardSize - 1
	g, err := s.Transform(Coord{Col: centre, Row: centre}, 2*local.Col-centre, 2*local.Row-centre)
	if err != nil {
		return Coord{}, err
	}
	return Coord{Col: g.Col / 2, Row: g.Row / 2}, nil
}
