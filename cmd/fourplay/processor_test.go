package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/config"
	"github.com/lgbarn/fourplay-go/internal/output"
	"github.com/lgbarn/fourplay-go/internal/snapshot"
	"github.com/lgbarn/fourplay-go/internal/store"
	"github.com/lgbarn/fourplay-go/internal/testutil"
)

// boardText renders placements in the text snapshot format.
func boardText(t *testing.T, placements ...string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := snapshot.Write(&buf, testutil.MustBoard(t, placements...)); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	return buf.String()
}

// game joins boards into one text input.
func game(t *testing.T, boards ...[]string) string {
	t.Helper()
	parts := make([]string, 0, len(boards))
	for _, b := range boards {
		parts = append(parts, boardText(t, b...))
	}
	return strings.Join(parts, "\n")
}

// testConfig returns a config writing output to out and discarding the log.
func testConfig(out *bytes.Buffer) (*config.Config, *bytes.Buffer) {
	var log bytes.Buffer
	cfg := config.NewConfig()
	cfg.SetOutput(out)
	cfg.SetLog(&log)
	cfg.Verbosity = 2
	cfg.Workers = 2
	return cfg, &log
}

func TestRecordTurns(t *testing.T) {
	var out bytes.Buffer
	cfg, log := testConfig(&out)

	input := game(t,
		[]string{"h1=wR"},
		[]string{"h1=wR"},
		[]string{"h3=wR"},
	)
	snaps, err := readText(strings.NewReader(input), "game.txt", cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(snaps), 3)

	turns, err := recordTurns(snaps, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(turns), 2)
	testutil.AssertEqual(t, turns[1].Header(), "Index: 2; Additions: 1; Removals: 1; Captures: 0; Deaths: 0")
	testutil.AssertEqual(t, cfg.NumSnapshotsRead, uint(3))
	testutil.AssertEqual(t, cfg.NumTurnsRecorded, uint(2))
	testutil.AssertContains(t, log.String(), "duplicate snapshot")
}

func TestRecordTurnsKeepsDuplicates(t *testing.T) {
	var out bytes.Buffer
	cfg, _ := testConfig(&out)
	cfg.Duplicate.Suppress = false

	snaps, err := readText(strings.NewReader(game(t, []string{"h1=wR"}, []string{"h1=wR"})), "game.txt", cfg)
	testutil.AssertNoError(t, err)

	turns, err := recordTurns(snaps, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(turns), 2)
	testutil.AssertTrue(t, turns[1].Diff.Empty())
}

func TestRecordTurnsSkipsBadSnapshots(t *testing.T) {
	var out bytes.Buffer
	cfg, log := testConfig(&out)

	bad := strings.Replace(boardText(t, "h1=wR"), "wR", "wZ", 1)
	input := strings.Join([]string{boardText(t, "e2=wP"), bad, boardText(t, "e4=wP")}, "\n")
	snaps, err := readText(strings.NewReader(input), "game.txt", cfg)
	testutil.AssertNoError(t, err)

	turns, err := recordTurns(snaps, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(turns), 2)
	testutil.AssertEqual(t, turns[1].Header(), "Index: 2; Additions: 1; Removals: 1; Captures: 0; Deaths: 0")
	testutil.AssertContains(t, log.String(), "Snapshot 2 skipped")

	cfg.SkipBad = true
	cfg.NumTurnsRecorded = 0
	turns, err = recordTurns(snaps, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(turns), 3)
	testutil.AssertEqual(t, cfg.NumCellsSkipped, uint(1))
}

func TestWriteTurnsAndSelection(t *testing.T) {
	var out bytes.Buffer
	cfg, _ := testConfig(&out)
	cfg.Select = "h1"

	snaps, err := readText(strings.NewReader(game(t, []string{"h1=wR", "h3=bR", "i3=bB"})), "game.txt", cfg)
	testutil.AssertNoError(t, err)
	turns, err := recordTurns(snaps, cfg)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, writeTurns(turns, cfg))
	testutil.AssertNoError(t, writeSelection(turns, cfg))

	text := out.String()
	testutil.AssertContains(t, text, "Index: 1; Additions: 3; Removals: 0; Captures: 0; Deaths: 0")
	testutil.AssertContains(t, text, "h1 -> h2 hostile (allies 1, enemies 2)")
}

func TestWriteSelectionJSON(t *testing.T) {
	var out bytes.Buffer
	cfg, _ := testConfig(&out)
	cfg.Select = "e2"
	cfg.Output.JSONFormat = true

	snaps, err := readText(strings.NewReader(game(t, []string{"e2=wP"})), "game.txt", cfg)
	testutil.AssertNoError(t, err)
	turns, err := recordTurns(snaps, cfg)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, writeSelection(turns, cfg))
	var hs []output.JSONHighlight
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &hs))
	testutil.AssertEqual(t, len(hs), 2)
	testutil.AssertEqual(t, hs[0].Square, "e3")
}

func TestSaveTurns(t *testing.T) {
	var out bytes.Buffer
	cfg, _ := testConfig(&out)
	dir := t.TempDir()
	cfg.Store.SQLitePath = filepath.Join(dir, "turns.db")
	cfg.Store.ParquetPath = filepath.Join(dir, "changes.parquet")

	snaps, err := readText(strings.NewReader(game(t, []string{"h1=wR"}, []string{"h2=wR"})), "game.txt", cfg)
	testutil.AssertNoError(t, err)
	turns, err := recordTurns(snaps, cfg)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, saveTurns(turns, cfg))

	db, err := store.Open(cfg.Store.SQLitePath)
	testutil.AssertNoError(t, err)
	defer db.Close()
	rows, err := db.Turns("game.txt")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(rows), 2)

	changes, err := store.ReadChangesParquet(cfg.Store.ParquetPath)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(changes), 3)
}

func TestReadHTMLFileSetsSeat(t *testing.T) {
	page := `<html><body><div id="four-player-username">alice</div>` +
		`<div class="yellow"><a class="player-avatar" href="/member/alice"></a></div>` +
		`<div class="board-4pc"><div data-square="g14"><div data-piece="bK"></div></div></div></body></html>`
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cfg, _ := testConfig(&out)
	s, err := readHTMLFile(path, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg.Seat, chess.Yellow)
	testutil.AssertEqual(t, s.Occupied(), 1)

	cfg.Seat = chess.Red
	_, err = readHTMLFile(path, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg.Seat, chess.Red, "an explicit seat wins")
}

func TestRenumber(t *testing.T) {
	snaps := []*snapshot.Snapshot{{Index: 1}, {Index: 1}, {Index: 7}}
	renumber(snaps)
	for i, s := range snaps {
		testutil.AssertEqual(t, s.Index, i+1)
	}
}
