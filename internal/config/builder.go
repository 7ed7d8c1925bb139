package config

import (
	"io"

	"github.com/lgbarn/fourplay-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
// cmd/fourplay fills its Config from flags instead; the builder serves
// tests and callers embedding the analyzer.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithSeat sets the local seat.
func (b *ConfigBuilder) WithSeat(seat chess.Seat) *ConfigBuilder {
	b.cfg.Seat = seat
	return b
}

// WithWorkers sets the number of parallel analysers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithSkipBad leaves unrecognized cells empty instead of failing.
func (b *ConfigBuilder) WithSkipBad(enabled bool) *ConfigBuilder {
	b.cfg.SkipBad = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithCandidates lists per-piece candidates in the text dump.
func (b *ConfigBuilder) WithCandidates(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowCandidates = enabled
	return b
}

// WithThreats prints the local seat's threat map.
func (b *ConfigBuilder) WithThreats(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowThreats = enabled
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithSQLite sets the turn log database path.
func (b *ConfigBuilder) WithSQLite(path string) *ConfigBuilder {
	b.cfg.Store.SQLitePath = path
	return b
}

// WithParquet sets the change export path.
func (b *ConfigBuilder) WithParquet(path string) *ConfigBuilder {
	b.cfg.Store.ParquetPath = path
	return b
}

// WithFeedAddr sets the feed listen address.
func (b *ConfigBuilder) WithFeedAddr(addr string) *ConfigBuilder {
	b.cfg.Feed.Addr = addr
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
