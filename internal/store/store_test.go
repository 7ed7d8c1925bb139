package store

import (
	"path/filepath"
	"testing"

	"github.com/lgbarn/fourplay-go/internal/processing"
	"github.com/lgbarn/fourplay-go/internal/snapshot"
	"github.com/lgbarn/fourplay-go/internal/testutil"
)

// recordTurns records one turn per placement list.
func recordTurns(t *testing.T, boards ...[]string) []*processing.Turn {
	t.Helper()
	r := processing.NewRecorder(false)
	var turns []*processing.Turn
	for i, placements := range boards {
		s := snapshot.FromBoard(testutil.MustBoard(t, placements...), i+1, "game.txt")
		a, err := processing.AnalyzeSnapshot(s, false)
		if err != nil {
			t.Fatalf("AnalyzeSnapshot() error: %v", err)
		}
		turn, err := r.Record(a)
		if err != nil {
			t.Fatalf("Record() error: %v", err)
		}
		turns = append(turns, turn)
	}
	return turns
}

func rookLift(t *testing.T) []*processing.Turn {
	return recordTurns(t,
		[]string{"h1=wR", "e2=wP"},
		[]string{"h3=wR", "e2=wP"},
	)
}

func TestChangeRows(t *testing.T) {
	turns := rookLift(t)

	got := ChangeRows("g1", turns[1])
	want := []ChangeRow{
		{Game: "g1", Turn: 2, Square: "h1", Piece: "wR", Change: "removed"},
		{Game: "g1", Turn: 2, Square: "h3", Piece: "wR", Change: "added"},
	}
	testutil.AssertEqual(t, got, want)
}

func TestSummaryRow(t *testing.T) {
	turns := rookLift(t)

	s := SummaryRow("g1", turns[0])
	testutil.AssertEqual(t, s.Turn, 1)
	testutil.AssertEqual(t, s.Pieces, 2)
	testutil.AssertEqual(t, s.Additions, 2)
	testutil.AssertEqual(t, s.Removals, 0)
	testutil.AssertEqual(t, len(s.Hash), 16)
	if s.Moves == 0 || s.Attacks == 0 {
		t.Errorf("SummaryRow() candidate counts = %d/%d; want non-zero", s.Moves, s.Attacks)
	}
}

func TestDBInsertTurn(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "turns.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()

	turns := rookLift(t)
	for _, turn := range turns {
		testutil.AssertNoError(t, db.InsertTurn("g1", turn))
	}

	rows, err := db.Turns("g1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(rows), 2)
	testutil.AssertEqual(t, rows[1], SummaryRow("g1", turns[1]))

	changes, err := db.Changes("g1", 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, changes, ChangeRows("g1", turns[1]))

	added, err := db.PieceHistory("g1", "added")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, added, map[string]int{"wR": 2, "wP": 1})
}

func TestDBInsertTurnReplaces(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "turns.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()

	turns := rookLift(t)
	testutil.AssertNoError(t, db.InsertTurn("g1", turns[0]))
	testutil.AssertNoError(t, db.InsertTurn("g1", turns[0]))

	changes, err := db.Changes("g1", 1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(changes), 2)

	other, err := db.Turns("g2")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(other), 0)
}

func TestParquetRoundTrip(t *testing.T) {
	turns := rookLift(t)
	var rows []ChangeRow
	for _, turn := range turns {
		rows = append(rows, ChangeRows("g1", turn)...)
	}

	for _, compression := range []string{"zstd", "none"} {
		t.Run(compression, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out", "changes.parquet")
			testutil.AssertNoError(t, WriteChangesParquet(path, rows, compression))

			got, err := ReadChangesParquet(path)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, rows)
		})
	}
}

func TestReadChangesParquetMissing(t *testing.T) {
	if _, err := ReadChangesParquet(filepath.Join(t.TempDir(), "nope.parquet")); err == nil {
		t.Error("ReadChangesParquet() on a missing file should fail")
	}
}
