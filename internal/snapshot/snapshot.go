// Package snapshot is the ingestion boundary: it turns per-cell piece codes
// read from text dumps or saved pages into analysable boards.
package snapshot

import (
	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/errors"
)

// CellCount is the number of cells in a complete snapshot.
const CellCount = chess.BoardSize * chess.BoardSize

// Cell is one grid cell as delivered by a collaborator.
type Cell struct {
	Square string // Algebraic code, "a1" to "n14"
	Piece  string // Two-character identity code, empty when vacant
}

// Snapshot is the raw state of every cell at one moment.
type Snapshot struct {
	Index  int    // 1-based position in its source
	Source string // File name or feed peer, for error context
	Cells  []Cell
}

// Complete checks that every one of the 196 cells is present exactly once.
// Torn snapshots must be rejected before they reach the engine.
func (s *Snapshot) Complete() error {
	var seen [chess.BoardSize][chess.BoardSize]bool
	for _, cell := range s.Cells {
		c, err := chess.ParseSquare(cell.Square)
		if err != nil {
			return s.fail(err, cell)
		}
		if seen[c.Row][c.Col] {
			return s.fail(errors.Wrapf(errors.ErrIncompleteSnapshot, "square %s repeated", cell.Square), cell)
		}
		seen[c.Row][c.Col] = true
	}
	if len(s.Cells) != CellCount {
		return &errors.SnapshotError{
			Err:  errors.Wrapf(errors.ErrIncompleteSnapshot, "%d of %d cells", len(s.Cells), CellCount),
			Turn: s.Index,
			File: s.Source,
		}
	}
	return nil
}

// Occupied returns the number of cells holding a piece code.
func (s *Snapshot) Occupied() int {
	n := 0
	for _, cell := range s.Cells {
		if cell.Piece != "" {
			n++
		}
	}
	return n
}

func (s *Snapshot) fail(err error, cell Cell) error {
	return &errors.SnapshotError{
		Err:    err,
		Turn:   s.Index,
		Square: cell.Square,
		Code:   cell.Piece,
		File:   s.Source,
	}
}

// Build constructs a board from a complete snapshot. Any cell that cannot
// be placed fails the whole snapshot.
func Build(s *Snapshot) (*chess.Board, error) {
	board, _, err := build(s, false)
	return board, err
}

// BuildSkipping is Build but leaves cells with unrecognized piece codes
// empty, returning one error per skipped cell.
func BuildSkipping(s *Snapshot) (*chess.Board, []error, error) {
	return build(s, true)
}

func build(s *Snapshot, skipBad bool) (*chess.Board, []error, error) {
	if err := s.Complete(); err != nil {
		return nil, nil, err
	}

	board := chess.NewBoard()
	var skipped []error
	for _, cell := range s.Cells {
		if cell.Piece == "" {
			continue
		}
		if _, err := board.Place(cell.Square, cell.Piece); err != nil {
			err = s.fail(err, cell)
			if skipBad && errors.Is(err, errors.ErrUnrecognizedCode) {
				skipped = append(skipped, err)
				continue
			}
			return nil, skipped, err
		}
	}
	return board, skipped, nil
}

// FromBoard captures a board as a snapshot in row-major order.
func FromBoard(board *chess.Board, index int, source string) *Snapshot {
	s := &Snapshot{Index: index, Source: source, Cells: make([]Cell, 0, CellCount)}
	board.Each(func(sq *chess.Square) {
		cell := Cell{Square: sq.Code()}
		if sq.Piece != nil {
			cell.Piece = sq.Piece.Code
		}
		s.Cells = append(s.Cells, cell)
	})
	return s
}
