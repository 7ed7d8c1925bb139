// Package processing turns snapshots into analysed, diffed turns.
package processing

import (
	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/engine"
	"github.com/lgbarn/fourplay-go/internal/hashing"
	"github.com/lgbarn/fourplay-go/internal/snapshot"
)

// Analysis holds the result of building and analysing one snapshot.
// Analyses are independent of each other and may be produced in parallel.
type Analysis struct {
	Snapshot *snapshot.Snapshot
	Board    *chess.Board
	Hash     uint64  // Zobrist hash of the placement
	Skipped  []error // Cells left empty because their code was unrecognized
}

// AnalyzeSnapshot builds a board from a complete snapshot and runs the
// candidate engine over it. With skipBad, cells holding unrecognized codes
// are left empty instead of failing the snapshot.
func AnalyzeSnapshot(s *snapshot.Snapshot, skipBad bool) (*Analysis, error) {
	var (
		board   *chess.Board
		skipped []error
		err     error
	)
	if skipBad {
		board, skipped, err = snapshot.BuildSkipping(s)
	} else {
		board, err = snapshot.Build(s)
	}
	if err != nil {
		return nil, err
	}

	if err := engine.Analyze(board); err != nil {
		return nil, err
	}

	return &Analysis{
		Snapshot: s,
		Board:    board,
		Hash:     hashing.GenerateZobristHash(board),
		Skipped:  skipped,
	}, nil
}

// CandidateCounts returns the total number of move and attack candidates
// over all pieces of an analysed board.
func CandidateCounts(board *chess.Board) (moves, attacks int) {
	for _, p := range board.Pieces() {
		moves += len(p.Moves)
		attacks += len(p.Attacks)
	}
	return moves, attacks
}

// SeatCounts returns the number of pieces per seat, Dead included.
func SeatCounts(board *chess.Board) map[chess.Seat]int {
	counts := make(map[chess.Seat]int)
	for _, p := range board.Pieces() {
		counts[p.Seat]++
	}
	return counts
}
