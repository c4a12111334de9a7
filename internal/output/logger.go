/*
PURPOSE:
  Provides a structured logger for euroeval-report.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy.
  - Warnings for skipped input lines must be visible by default.

  Implementation-discovered:
  - Documents may be written to stdout, so logs go to stderr.
  - --debug and --log-format are applied by internal/cli/root.go.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).

USAGE:
  output.Logger.Info("message", "key", "value")

SELF-HEALING INSTRUCTIONS:
  - Ensure Go 1.21+ is used.

RELATED FILES:
  - All.

MAINTENANCE:
  - Add handlers here, not at call sites.
*/

package output

import (
	"io"
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	Logger = NewLogger(os.Stderr, "text", slog.LevelInfo)
}

// NewLogger builds a logger writing to w. format is "text" or "json".
func NewLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}
