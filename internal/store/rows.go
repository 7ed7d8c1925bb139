// Package store persists recorded turns to SQLite and exports per-square
// changes to Parquet.
package store

import (
	"fmt"

	"github.com/lgbarn/fourplay-go/internal/processing"
)

// ChangeRow is one changed square of one turn.
type ChangeRow struct {
	Game   string `parquet:"game,dict"`
	Turn   int32  `parquet:"turn"`
	Square string `parquet:"square,dict"`
	Piece  string `parquet:"piece,dict"`
	Change string `parquet:"change,dict"`
}

// TurnRow summarises one turn.
type TurnRow struct {
	Game      string
	Turn      int
	Hash      string
	Pieces    int
	Additions int
	Removals  int
	Captures  int
	Deaths    int
	Moves     int
	Attacks   int
	Repeated  bool
}

// ChangeRows flattens the diff of a turn, row-major.
func ChangeRows(game string, turn *processing.Turn) []ChangeRow {
	changes := turn.Diff.Changes()
	rows := make([]ChangeRow, 0, len(changes))
	for _, e := range changes {
		rows = append(rows, ChangeRow{
			Game:   game,
			Turn:   int32(turn.Index),
			Square: e.Code(),
			Piece:  e.Piece,
			Change: e.Change.String(),
		})
	}
	return rows
}

// SummaryRow summarises a turn for the turn log.
func SummaryRow(game string, turn *processing.Turn) TurnRow {
	moves, attacks := processing.CandidateCounts(turn.Board)
	d := turn.Diff
	return TurnRow{
		Game:      game,
		Turn:      turn.Index,
		Hash:      fmt.Sprintf("%016x", turn.Hash),
		Pieces:    turn.Board.Count(),
		Additions: len(d.Additions),
		Removals:  len(d.Removals),
		Captures:  len(d.Captures),
		Deaths:    len(d.Deaths),
		Moves:     moves,
		Attacks:   attacks,
		Repeated:  turn.Repeated,
	}
}
