// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/config"
)

var (
	// Input options
	inputFile = flag.String("i", "", "Text snapshot file (default: stdin)")
	htmlFiles = flag.String("html", "", "Saved game pages, comma-separated")
	seatName  = flag.String("seat", "", "Local seat: red, blue, yellow or green")
	skipBad   = flag.Bool("skipbad", false, "Leave cells with unrecognized codes empty")

	// Output options
	outputFile     = flag.String("o", "", "Output file (default: stdout)")
	appendOutput   = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput     = flag.Bool("J", false, "Output in JSON format")
	noBoard        = flag.Bool("noboard", false, "Don't print the board grid")
	showCandidates = flag.Bool("candidates", false, "List each piece's move and attack candidates")
	showThreats    = flag.Bool("threats", false, "Print the local seat's threat map")
	selectSquare   = flag.String("select", "", "Print highlights for this square of the last turn")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 counts, 2 commentary")
	quiet     = flag.Bool("s", false, "Silent mode (no counts)")

	// Processing
	numWorkers        = flag.Int("workers", 0, "Parallel snapshot analysers (0 = one per CPU)")
	keepDuplicates    = flag.Bool("keepdups", false, "Record consecutive identical snapshots as turns")
	duplicateCapacity = flag.Int("duplicate-capacity", 0, "Maximum tracked positions in the feed server (0 = unlimited)")

	// Storage
	dbFile      = flag.String("db", "", "SQLite turn log")
	parquetFile = flag.String("parquet", "", "Parquet change export")
	compression = flag.String("compression", config.CompressionZstd, "Parquet compression: zstd or none")

	// Modes
	serveAddr = flag.String("serve", "", "Run the WebSocket feed on this address")
	view      = flag.Bool("view", false, "Browse the recorded turns in the terminal viewer")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyAnalysisFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	applyDuplicateFlags(cfg)
	applyStoreFlags(cfg)
	applyFeedFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyAnalysisFlags configures the local seat and snapshot handling.
func applyAnalysisFlags(cfg *config.Config) error {
	if *seatName != "" {
		seat, err := chess.ParseSeat(*seatName)
		if err != nil {
			return err
		}
		cfg.Seat = seat
	}
	cfg.Workers = *numWorkers
	cfg.SkipBad = *skipBad
	cfg.Select = strings.ToLower(strings.TrimSpace(*selectSquare))
	return nil
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowCandidates = *showCandidates
	cfg.Output.ShowThreats = *showThreats
	cfg.OutputFilename = *outputFile
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = !*keepDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}

// applyStoreFlags configures persistence.
func applyStoreFlags(cfg *config.Config) {
	cfg.Store.SQLitePath = *dbFile
	cfg.Store.ParquetPath = *parquetFile
	cfg.Store.Compression = *compression
}

// applyFeedFlags configures the feed server.
func applyFeedFlags(cfg *config.Config) {
	cfg.Feed.Addr = *serveAddr
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
