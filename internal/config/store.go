package config

import (
	"fmt"

	"github.com/lgbarn/fourplay-go/internal/errors"
)

// Parquet compression codecs accepted by StoreConfig.
const (
	CompressionZstd = "zstd"
	CompressionNone = "none"
)

// StoreConfig holds settings for persisting turns.
type StoreConfig struct {
	// SQLitePath is the turn log database, empty to disable
	SQLitePath string

	// ParquetPath is the change export file, empty to disable
	ParquetPath string

	// Compression is the Parquet codec
	Compression string
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{Compression: CompressionZstd}
}

// Enabled reports whether any store is configured.
func (s *StoreConfig) Enabled() bool {
	return s.SQLitePath != "" || s.ParquetPath != ""
}

// Validate checks that the store configuration is valid.
func (s *StoreConfig) Validate() error {
	switch s.Compression {
	case CompressionZstd, CompressionNone:
		return nil
	}
	return fmt.Errorf("parquet compression %q: %w", s.Compression, errors.ErrInvalidConfig)
}
