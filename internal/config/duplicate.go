package config

import (
	"fmt"

	"github.com/lgbarn/fourplay-go/internal/errors"
)

// DuplicateConfig holds settings for repeated snapshot detection.
type DuplicateConfig struct {
	// Suppress drops a snapshot identical to the one just recorded
	Suppress bool

	// MaxCapacity bounds the positions remembered for repetition
	// reporting, 0 means unlimited
	MaxCapacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		Suppress:    true,
		MaxCapacity: 0,
	}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity %d is negative: %w", d.MaxCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
