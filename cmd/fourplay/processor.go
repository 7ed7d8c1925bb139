package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/fourplay-go/internal/config"
	"github.com/lgbarn/fourplay-go/internal/engine"
	"github.com/lgbarn/fourplay-go/internal/errors"
	"github.com/lgbarn/fourplay-go/internal/output"
	"github.com/lgbarn/fourplay-go/internal/processing"
	"github.com/lgbarn/fourplay-go/internal/snapshot"
	"github.com/lgbarn/fourplay-go/internal/store"
	"github.com/lgbarn/fourplay-go/internal/worker"
)

// readText reads every text snapshot from r.
func readText(r io.Reader, name string, cfg *config.Config) ([]*snapshot.Snapshot, error) {
	cfg.CurrentInputFile = name
	snaps, err := snapshot.ReadAll(r, name)
	cfg.Logf(2, "%s: %d snapshot(s)\n", name, len(snaps))
	return snaps, err
}

// readTextFile opens and reads one text snapshot file.
func readTextFile(path string, cfg *config.Config) ([]*snapshot.Snapshot, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readText(file, path, cfg)
}

// readHTMLFile reads one saved page. The first page that names a seated
// player fills in the local seat when none was given.
func readHTMLFile(path string, cfg *config.Config) (*snapshot.Snapshot, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg.CurrentInputFile = path
	page, err := snapshot.ReadHTML(file, path)
	if err != nil {
		return nil, err
	}
	if page.Seat.Playing() && !cfg.Seat.Playing() {
		cfg.Seat = page.Seat
		cfg.Logf(2, "%s: %s plays %s\n", path, page.Username, page.Seat)
	}
	return page.Snapshot, nil
}

// renumber gives snapshots from several sources one running index.
func renumber(snaps []*snapshot.Snapshot) {
	for i, s := range snaps {
		s.Index = i + 1
	}
}

// recordTurns analyses snapshots in parallel and records them in order.
// A snapshot that cannot be analysed is logged and left out; the game
// carries on from the last good turn.
func recordTurns(snaps []*snapshot.Snapshot, cfg *config.Config) ([]*processing.Turn, error) {
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	recorder := processing.NewRecorder(cfg.Duplicate.Suppress)
	var turns []*processing.Turn

	err := worker.AnalyzeAll(snaps, workers, cfg.SkipBad, func(r worker.ProcessResult) error {
		cfg.NumSnapshotsRead++
		if r.Error != nil {
			cfg.Logf(1, "Snapshot %d skipped: %v\n", r.Index+1, r.Error)
			return nil
		}
		for _, skipped := range r.Analysis.Skipped {
			cfg.Logf(2, "Snapshot %d: %v\n", r.Analysis.Snapshot.Index, skipped)
		}
		cfg.NumCellsSkipped += uint(len(r.Analysis.Skipped))

		turn, err := recorder.Record(r.Analysis)
		if errors.Is(err, errors.ErrDuplicateSnapshot) {
			cfg.Logf(2, "%v\n", err)
			return nil
		}
		if err != nil {
			return err
		}
		cfg.NumTurnsRecorded++
		turns = append(turns, turn)
		return nil
	})
	if err != nil {
		return turns, err
	}

	if n := recorder.Repetitions(); n > 0 {
		cfg.Logf(2, "%d turn(s) repeated an earlier position\n", n)
	}
	return turns, nil
}

// writeTurns writes every turn in the configured format.
func writeTurns(turns []*processing.Turn, cfg *config.Config) error {
	w := output.NewTurnWriter(cfg.OutputFile, cfg)
	for _, turn := range turns {
		if err := w.WriteTurn(turn); err != nil {
			return err
		}
	}
	return w.Close()
}

// gameName names the game a turn belongs to in the stores.
func gameName(turn *processing.Turn) string {
	if turn.Source == "" {
		return "stdin"
	}
	return turn.Source
}

// saveTurns persists turns to whichever stores are configured.
func saveTurns(turns []*processing.Turn, cfg *config.Config) error {
	if cfg.Store.SQLitePath != "" {
		db, err := store.Open(cfg.Store.SQLitePath)
		if err != nil {
			return err
		}
		for _, turn := range turns {
			if err := db.InsertTurn(gameName(turn), turn); err != nil {
				db.Close() //nolint:errcheck,gosec // G104: already failing
				return err
			}
		}
		if err := db.Close(); err != nil {
			return err
		}
		cfg.Logf(2, "Saved %d turn(s) to %s\n", len(turns), cfg.Store.SQLitePath)
	}

	if cfg.Store.ParquetPath != "" {
		var rows []store.ChangeRow
		for _, turn := range turns {
			rows = append(rows, store.ChangeRows(gameName(turn), turn)...)
		}
		if err := store.WriteChangesParquet(cfg.Store.ParquetPath, rows, cfg.Store.Compression); err != nil {
			return err
		}
		cfg.Logf(2, "Exported %d change(s) to %s\n", len(rows), cfg.Store.ParquetPath)
	}
	return nil
}

// writeSelection prints the highlights of the selected square on the last turn.
func writeSelection(turns []*processing.Turn, cfg *config.Config) error {
	if cfg.Select == "" || len(turns) == 0 {
		return nil
	}
	last := turns[len(turns)-1]
	hs, err := engine.HighlightsAt(last.Board, cfg.Select)
	if err != nil {
		return fmt.Errorf("select %s: %w", cfg.Select, err)
	}

	if cfg.Output.JSONFormat {
		enc := json.NewEncoder(cfg.OutputFile)
		enc.SetIndent("", "  ")
		return enc.Encode(output.HighlightsToJSON(hs))
	}
	return output.WriteHighlights(cfg.OutputFile, cfg.Select, hs)
}
