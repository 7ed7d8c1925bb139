package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/fourplay-go/internal/config"
	"github.com/lgbarn/fourplay-go/internal/processing"
)

// TurnWriter is the interface for writing turns to output.
// Different implementations handle different output formats (text, JSON).
type TurnWriter interface {
	// WriteTurn writes a single turn to the output.
	WriteTurn(turn *processing.Turn) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewTurnWriter returns the writer matching the configured format.
func NewTurnWriter(w io.Writer, cfg *config.Config) TurnWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes turns as text dumps.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteTurn writes a turn as a text dump.
func (tw *TextWriter) WriteTurn(turn *processing.Turn) error {
	return WriteTurn(tw.w, turn, tw.cfg)
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes turns in JSON format.
// It buffers turns and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	turns  []*processing.Turn
	single bool // If true, write each turn immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches turns and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		turns:  make([]*processing.Turn, 0),
		single: false,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each turn immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteTurn buffers a turn for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteTurn(turn *processing.Turn) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(TurnToJSON(turn, jw.cfg))
	}

	jw.turns = append(jw.turns, turn)
	return nil
}

// Flush writes all buffered turns as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.turns) == 0 {
		return nil
	}

	err := OutputTurnsJSON(jw.turns, jw.cfg, jw.w)

	// Clear buffer after writing
	jw.turns = jw.turns[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
