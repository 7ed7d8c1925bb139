package feed

import (
	"io"
	"log/slog"
)

// NewLogger returns a JSON slog logger whose level follows the CLI
// verbosity: 0 warnings only, 1 info, 2 debug.
func NewLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case verbosity <= 0:
		level = slog.LevelWarn
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
