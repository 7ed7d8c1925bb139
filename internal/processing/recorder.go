package processing

import (
	"fmt"

	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/diff"
	"github.com/lgbarn/fourplay-go/internal/errors"
	"github.com/lgbarn/fourplay-go/internal/hashing"
)

// Turn is one recorded snapshot together with its diff against the
// previous turn.
type Turn struct {
	Index    int // 1-based
	Source   string
	Board    *chess.Board
	Diff     *diff.Diff
	Hash     uint64
	Repeated bool // Placement already seen at an earlier, non-adjacent turn
}

// Header returns the one-line summary of the turn's diff.
func (t *Turn) Header() string {
	return t.Diff.Header(t.Index)
}

// Recorder sequences analyses into numbered turns. It is not safe for
// concurrent use: turns must be recorded in snapshot order.
type Recorder struct {
	prev     *chess.Board
	prevHash uint64
	last     *Turn
	count    int
	repeats  int

	suppressDuplicates bool
	detector           *hashing.DuplicateDetector
}

// NewRecorder creates a recorder whose first turn diffs against an empty
// board. With suppressDuplicates, a snapshot identical to the one just
// recorded is rejected with ErrDuplicateSnapshot.
func NewRecorder(suppressDuplicates bool) *Recorder {
	return &Recorder{
		prev:               chess.NewBoard(),
		suppressDuplicates: suppressDuplicates,
		detector:           hashing.NewDuplicateDetector(true, 0),
	}
}

// Record diffs an analysis against the previous turn and returns the new turn.
func (r *Recorder) Record(a *Analysis) (*Turn, error) {
	if r.suppressDuplicates && r.last != nil && a.Hash == r.prevHash {
		return nil, fmt.Errorf("snapshot %d: %w", a.Snapshot.Index, errors.ErrDuplicateSnapshot)
	}

	d, err := diff.Compute(r.prev, a.Board)
	if err != nil {
		return nil, err
	}

	seen := r.detector.CheckAndAdd(a.Board)
	r.count++
	turn := &Turn{
		Index:    r.count,
		Source:   a.Snapshot.Source,
		Board:    a.Board,
		Diff:     d,
		Hash:     a.Hash,
		Repeated: seen && !(r.last != nil && a.Hash == r.prevHash),
	}

	if turn.Repeated {
		r.repeats++
	}
	r.prev, r.prevHash, r.last = a.Board, a.Hash, turn
	return turn, nil
}

// Count returns the number of turns recorded.
func (r *Recorder) Count() int {
	return r.count
}

// Last returns the most recent turn, or nil before the first.
func (r *Recorder) Last() *Turn {
	return r.last
}

// Repetitions returns how many recorded turns were marked Repeated.
func (r *Recorder) Repetitions() int {
	return r.repeats
}
