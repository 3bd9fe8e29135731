package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/nutriguide/nutricorpus/dbopen"
	_ "modernc.org/sqlite"
)

func testLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewLogger(&buf, slog.LevelDebug), &buf
}

func TestNewLogger_WritesToBuffer(t *testing.T) {
	logger, buf := testLogger(t)
	logger.Info("processing document", "source_id", "dga_2020")
	if !strings.Contains(buf.String(), "dga_2020") {
		t.Errorf("log output missing attribute: %q", buf.String())
	}
}

func TestEventLogger_RecordAndFinish(t *testing.T) {
	// WHAT: Events and run summaries land in the audit tables.
	// WHY: The audit trail is the only durable record of what the filter
	// dropped and why.
	ctx := context.Background()
	db := dbopen.OpenMemory(t, dbopen.WithSchema(Schema))
	logger, _ := testLogger(t)

	el, err := NewEventLogger(ctx, db, logger, "manifests/corpus.yaml")
	if err != nil {
		t.Fatal(err)
	}

	el.Record(ctx, Event{Type: EventPageSkipped, SourceID: "dga_2020", Page: 1, Detail: "administrative", Success: true})
	el.Record(ctx, Event{Type: EventDocumentProcessed, SourceID: "dga_2020", Success: true})
	el.Record(ctx, Event{Type: EventDocumentFailed, SourceID: "missing_doc", Detail: "file not found", Success: false})

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ingest_events WHERE run_id = ?`, el.RunID()).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("event count = %d, want 3", n)
	}

	el.Finish(ctx, RunSummary{DocumentsOK: 1, DocumentsFailed: 1, ChunksTotal: 4, ChunksRemoved: 1})

	var ok, failed, total, removed int
	var finished *int64
	err = db.QueryRow(`
		SELECT documents_ok, documents_failed, chunks_total, chunks_removed, finished_at
		FROM ingest_runs WHERE run_id = ?`, el.RunID()).
		Scan(&ok, &failed, &total, &removed, &finished)
	if err != nil {
		t.Fatal(err)
	}
	if ok != 1 || failed != 1 || total != 4 || removed != 1 {
		t.Errorf("summary = %d/%d/%d/%d, want 1/1/4/1", ok, failed, total, removed)
	}
	if finished == nil {
		t.Error("finished_at not set")
	}
}

func TestEventLogger_WriteFailureDoesNotPropagate(t *testing.T) {
	// WHAT: Recording into a broken store logs an error and returns.
	// WHY: Audit problems must never abort corpus building.
	ctx := context.Background()
	db := dbopen.OpenMemory(t, dbopen.WithSchema(Schema))
	logger, buf := testLogger(t)

	el, err := NewEventLogger(ctx, db, logger, "m.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := db.Exec(`DROP TABLE ingest_events`); err != nil {
		t.Fatal(err)
	}

	el.Record(ctx, Event{Type: EventPageSkipped, SourceID: "x"})
	if !strings.Contains(buf.String(), "audit event write failed") {
		t.Error("expected write failure to be logged")
	}
}

func TestNopSink(t *testing.T) {
	var s EventSink = NopSink{}
	s.Record(context.Background(), Event{Type: EventChunkRemoved})
}
