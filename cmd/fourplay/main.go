// fourplay analyses four-player chess board snapshots: candidate moves and
// attacks, highlighting, and turn-by-turn diffs.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/fourplay-go/internal/config"
	"github.com/lgbarn/fourplay-go/internal/feed"
	"github.com/lgbarn/fourplay-go/internal/snapshot"
	"github.com/lgbarn/fourplay-go/internal/viewer"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fourplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)

	if cfg.Feed.Addr != "" {
		if err := runFeed(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	setupOutputFile(cfg)

	snaps := readAllInputs(cfg)
	turns, err := recordTurns(snaps, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *view {
		if err := viewer.Run(turns, cfg.Seat); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := writeTurns(turns, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		if err := writeSelection(turns, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := saveTurns(turns, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving turns: %v\n", err)
		os.Exit(1)
	}

	reportStatistics(cfg)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(cfg.OutputFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(cfg.OutputFilename)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// readAllInputs reads the text file, any extra file arguments and the saved
// pages, falling back to stdin when nothing is named. A file that fails to
// read is reported and the snapshots read before the failure are kept.
func readAllInputs(cfg *config.Config) []*snapshot.Snapshot {
	var textFiles []string
	if *inputFile != "" {
		textFiles = append(textFiles, *inputFile)
	}
	textFiles = append(textFiles, flag.Args()...)
	pages := splitList(*htmlFiles)

	var snaps []*snapshot.Snapshot
	if len(textFiles) == 0 && len(pages) == 0 {
		got, err := readText(os.Stdin, "stdin", cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
		}
		snaps = got
	}

	for _, path := range textFiles {
		got, err := readTextFile(path, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		}
		snaps = append(snaps, got...)
	}

	for _, path := range pages {
		s, err := readHTMLFile(path, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			continue
		}
		snaps = append(snaps, s)
	}

	renumber(snaps)
	return snaps
}

// runFeed serves the WebSocket feed until interrupted.
func runFeed(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := feed.NewServer(cfg, feed.NewLogger(cfg.LogFile, cfg.Verbosity))
	return server.ListenAndServe(ctx)
}

// reportStatistics prints the final counts to the log.
func reportStatistics(cfg *config.Config) {
	cfg.Logf(1, "%d turn(s) recorded from %d snapshot(s).\n", cfg.NumTurnsRecorded, cfg.NumSnapshotsRead)
	if cfg.NumCellsSkipped > 0 {
		cfg.Logf(1, "%d cell(s) with unrecognized codes left empty.\n", cfg.NumCellsSkipped)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fourplay [options] [snapshot-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Analyses four-player chess board snapshots.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nText snapshots:\n")
	fmt.Fprintf(os.Stderr, "  14 lines, rank 14 first, 14 cells each: a piece code such as wR,\n")
	fmt.Fprintf(os.Stderr, "  '.' for an empty square or '#' for a corner cell. Blank lines\n")
	fmt.Fprintf(os.Stderr, "  separate snapshots and lines starting with ';' are comments.\n")
}
