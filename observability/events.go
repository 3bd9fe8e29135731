package observability

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Event types recorded by the pipeline.
const (
	EventDocumentProcessed = "document_processed"
	EventDocumentFailed    = "document_failed"
	EventPageSkipped       = "page_skipped"
	EventPageFailed        = "page_failed"
	EventChunkRemoved      = "chunk_removed"
)

// Event is one domain-level occurrence during an ingest run.
type Event struct {
	Type     string
	SourceID string
	Page     int    // 0 when not page-scoped
	Detail   string // free-form, e.g. skip reason or error text
	Success  bool
}

// EventSink receives pipeline events. Implementations must never fail the
// pipeline: recording problems are theirs to swallow and log.
type EventSink interface {
	Record(ctx context.Context, e Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Record(context.Context, Event) {}

// RunSummary is the per-run rollup persisted when a run finishes.
type RunSummary struct {
	DocumentsOK     int
	DocumentsFailed int
	ChunksTotal     int
	ChunksRemoved   int
}

// EventLogger persists ingest events for one run to the audit database.
// Write failures are logged via slog and never propagate, so a failing
// audit store cannot abort corpus building.
type EventLogger struct {
	db     *sql.DB
	logger *slog.Logger
	runID  string
}

// NewEventLogger opens a new run scoped to manifestPath and returns its
// logger. The database must already carry Schema.
func NewEventLogger(ctx context.Context, db *sql.DB, logger *slog.Logger, manifestPath string) (*EventLogger, error) {
	l := &EventLogger{
		db:     db,
		logger: logger,
		runID:  "run_" + uuid.NewString(),
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO ingest_runs (run_id, manifest_path, started_at)
		VALUES (?,?,?)`,
		l.runID, manifestPath, time.Now().Unix())
	if err != nil {
		return nil, err
	}
	return l, nil
}

// RunID returns the identifier of the run this logger records.
func (l *EventLogger) RunID() string { return l.runID }

// Record implements EventSink.
func (l *EventLogger) Record(ctx context.Context, e Event) {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO ingest_events (event_id, run_id, event_type, source_id, page, detail, success)
		VALUES (?,?,?,?,?,?,?)`,
		"evt_"+uuid.NewString(), l.runID, e.Type, e.SourceID, e.Page, e.Detail, e.Success)
	if err != nil {
		l.logger.Error("audit event write failed", "error", err, "event_type", e.Type)
	}
}

// Finish stamps the run row with its end time and summary counters.
func (l *EventLogger) Finish(ctx context.Context, s RunSummary) {
	_, err := l.db.ExecContext(ctx, `
		UPDATE ingest_runs
		SET finished_at = ?, documents_ok = ?, documents_failed = ?, chunks_total = ?, chunks_removed = ?
		WHERE run_id = ?`,
		time.Now().Unix(), s.DocumentsOK, s.DocumentsFailed, s.ChunksTotal, s.ChunksRemoved, l.runID)
	if err != nil {
		l.logger.Error("audit run finish failed", "error", err, "run_id", l.runID)
	}
}
