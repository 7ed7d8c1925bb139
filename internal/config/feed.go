package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/fourplay-go/internal/errors"
)

// FeedConfig holds settings for the WebSocket snapshot feed.
type FeedConfig struct {
	// Addr is the listen address, empty disables the server
	Addr string

	// ReadLimit caps the size of one incoming message in bytes
	ReadLimit int64

	// WriteTimeout bounds each outgoing message
	WriteTimeout time.Duration

	// PingInterval is the keepalive period; pongs are awaited for twice as long
	PingInterval time.Duration
}

// NewFeedConfig creates a FeedConfig with default values.
func NewFeedConfig() *FeedConfig {
	return &FeedConfig{
		ReadLimit:    64 * 1024,
		WriteTimeout: 10 * time.Second,
		PingInterval: 30 * time.Second,
	}
}

// Validate checks that the feed configuration is valid.
func (f *FeedConfig) Validate() error {
	if f.ReadLimit <= 0 {
		return fmt.Errorf("feed read limit %d: %w", f.ReadLimit, errors.ErrInvalidConfig)
	}
	if f.WriteTimeout <= 0 || f.PingInterval <= 0 {
		return fmt.Errorf("feed timeouts must be positive: %w", errors.ErrInvalidConfig)
	}
	return nil
}
