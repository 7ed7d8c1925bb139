// Package diff compares two board snapshots square by square.
package diff

import (
	"fmt"

	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/errors"
)

// Change classifies what happened on one square between two snapshots.
type Change int

const (
	None Change = iota
	Added
	Removed
	Captured
	Died
)

// String implements fmt.Stringer.
func (c Change) String() string {
	switch c {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Captured:
		return "captured"
	case Died:
		return "died"
	}
	return "none"
}

// Tag returns the one-character marker used in text dumps.
func (c Change) Tag() string {
	switch c {
	case Added:
		return "+"
	case Removed:
		return "-"
	case Captured:
		return "*"
	case Died:
		return "x"
	}
	return ""
}

// Entry is one cell of the diff board.
type Entry struct {
	Coord  chess.Coord
	Piece  string // Piece code stamped for the change, empty when None
	Change Change
}

// Code returns the algebraic code of the entry's square.
func (e Entry) Code() string {
	return e.Coord.Code()
}

// Diff is the immutable comparison of two snapshots.
type Diff struct {
	Board [chess.BoardSize][chess.BoardSize]Entry // [row][col]

	Additions []chess.Coord
	Removals  []chess.Coord
	Captures  []chess.Coord
	Deaths    []chess.Coord
}

// Classify returns the change between the previous and current occupant of
// one square. Empty strings mean an empty square.
func Classify(prev, cur string) (Change, error) {
	switch {
	case prev == "" && cur == "":
		return None, nil
	case prev == "":
		return Added, nil
	case cur == "":
		return Removed, nil
	case prev == cur:
		return None, nil
	}

	seat, _, err := chess.ParseCode(cur)
	if err != nil {
		return None, err
	}
	if seat == chess.Dead {
		return Died, nil
	}
	return Captured, nil
}

// Compute diffs two full boards. Board dimensions are fixed by its array
// type, so a missing board is the only mismatch left to reject. Squares
// are visited in row-major order so every list is sorted that way.
func Compute(prev, cur *chess.Board) (*Diff, error) {
	if prev == nil || cur == nil {
		return nil, fmt.Errorf("diff: missing board: %w", errors.ErrDimensionMismatch)
	}

	d := &Diff{}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			c := chess.Coord{Col: col, Row: row}
			before, after := occupant(prev.Squares[row][col]), occupant(cur.Squares[row][col])

			change, err := Classify(before, after)
			if err != nil {
				return nil, fmt.Errorf("diff %s: %w", c.Code(), err)
			}
			d.record(c, change, before, after)
		}
	}
	return d, nil
}

func (d *Diff) record(c chess.Coord, change Change, before, after string) {
	e := Entry{Coord: c, Change: change}
	switch change {
	case Added:
		e.Piece = after
		d.Additions = append(d.Additions, c)
	case Removed:
		e.Piece = before
		d.Removals = append(d.Removals, c)
	case Captured:
		e.Piece = after
		d.Captures = append(d.Captures, c)
	case Died:
		e.Piece = after
		d.Deaths = append(d.Deaths, c)
	}
	d.Board[c.Row][c.Col] = e
}

// Entry returns the diff board cell at c.
func (d *Diff) Entry(c chess.Coord) Entry {
	return d.Board[c.Row][c.Col]
}

// Empty reports whether nothing changed.
func (d *Diff) Empty() bool {
	return len(d.Additions)+len(d.Removals)+len(d.Captures)+len(d.Deaths) == 0
}

// Changes returns every non-None entry in row-major order.
func (d *Diff) Changes() []Entry {
	var out []Entry
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if e := d.Board[row][col]; e.Change != None {
				out = append(out, e)
			}
		}
	}
	return out
}

// Header summarises the diff for turn index.
func (d *Diff) Header(index int) string {
	return fmt.Sprintf("Index: %d; Additions: %d; Removals: %d; Captures: %d; Deaths: %d",
		index, len(d.Additions), len(d.Removals), len(d.Captures), len(d.Deaths))
}

func occupant(sq *chess.Square) string {
	if sq == nil || sq.Piece == nil {
		return ""
	}
	return sq.Piece.Code
}
