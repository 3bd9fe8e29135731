// Package observability provides the corpus builder's run reporting: slog
// construction and an SQLite-backed ingest audit trail.
//
// Nothing here is process-global. Loggers and event sinks are constructed
// explicitly and injected, so tests capture output in buffers and in-memory
// databases instead of touching the filesystem.
package observability

import (
	"io"
	"log/slog"
)

// NewLogger returns a text-handler slog.Logger writing to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
