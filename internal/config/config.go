// Package config provides configuration for fourplay.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/fourplay-go/internal/chess"
	"github.com/lgbarn/fourplay-go/internal/errors"
)

// Config holds all program configuration and state.
type Config struct {
	// Processing state
	Verbosity int // 0=nothing, 1=turn count, 2=running commentary

	// Analysis
	Seat    chess.Seat // Local seat, Dead when unknown
	Workers int        // Parallel snapshot analysers, 0 means one per CPU
	SkipBad bool       // Leave cells with unrecognized codes empty
	Select  string     // Square whose highlights are printed for the last turn

	// Grouped settings
	Output    *OutputConfig
	Duplicate *DuplicateConfig
	Store     *StoreConfig
	Feed      *FeedConfig

	// Counters
	NumSnapshotsRead uint
	NumTurnsRecorded uint
	NumCellsSkipped  uint

	// File handling
	CurrentInputFile string
	OutputFilename   string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Seat:       chess.Dead,
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Store:      NewStoreConfig(),
		Feed:       NewFeedConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes to the log when verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity >= level && c.LogFile != nil {
		fmt.Fprintf(c.LogFile, format, args...)
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Select != "" {
		sq, err := chess.ParseSquare(c.Select)
		if err != nil {
			return fmt.Errorf("select %q: %w", c.Select, errors.ErrInvalidConfig)
		}
		if !sq.Accessible() {
			return fmt.Errorf("select %q is a corner cell: %w", c.Select, errors.ErrInvalidConfig)
		}
	}
	if err := c.Duplicate.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	return c.Feed.Validate()
}
