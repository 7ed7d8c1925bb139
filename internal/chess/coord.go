package chess

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/fourplay-go/internal/errors"
)

// Coord addresses one cell of the grid. Col is the file (letter) index and
// Row the rank index, both 0-based.
type Coord struct {
	Col int
	Row int
}

// Valid reports whether the coordinate lies inside the 14x14 grid.
func (c Coord) Valid() bool {
	return c.Col >= 0 && c.Col < BoardSize && c.Row >= 0 && c.Row < BoardSize
}

// Accessible reports whether the coordinate is part of the plus-shaped
// playable region, i.e. not inside one of the four corner blocks.
func (c Coord) Accessible() bool {
	if !c.Valid() {
		return false
	}
	inner := func(i int) bool { return i >= CornerSize && i < BoardSize-CornerSize }
	return inner(c.Col) || inner(c.Row)
}

// Code returns the algebraic code of the coordinate, e.g. "h1".
func (c Coord) Code() string {
	return string(rune(FileBase+c.Col)) + strconv.Itoa(c.Row+1)
}

// String implements fmt.Stringer.
func (c Coord) String() string {
	return c.Code()
}

// ParseSquare converts an algebraic code ("a1" to "n14") to a coordinate.
func ParseSquare(code string) (Coord, error) {
	if len(code) < 2 || len(code) > 3 {
		return Coord{}, fmt.Errorf("square %q: %w", code, errors.ErrInvalidSquare)
	}
	col := int(code[0]) - FileBase
	rank, err := strconv.Atoi(code[1:])
	if err != nil || code[1] == '0' || code[1] == '+' || code[1] == '-' {
		return Coord{}, fmt.Errorf("square %q: %w", code, errors.ErrInvalidSquare)
	}
	c := Coord{Col: col, Row: rank - 1}
	if !c.Valid() {
		return Coord{}, fmt.Errorf("square %q out of range: %w", code, errors.ErrInvalidSquare)
	}
	return c, nil
}
