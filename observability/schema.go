package observability

// Schema contains the DDL for the ingest audit tables. Pass it to
// dbopen.Open via WithSchema, or embed it in your own schema management.
const Schema = `
-- One row per pipeline run.
CREATE TABLE IF NOT EXISTS ingest_runs (
    run_id TEXT PRIMARY KEY,
    manifest_path TEXT NOT NULL,
    started_at INTEGER NOT NULL,
    finished_at INTEGER,
    documents_ok INTEGER NOT NULL DEFAULT 0,
    documents_failed INTEGER NOT NULL DEFAULT 0,
    chunks_total INTEGER NOT NULL DEFAULT 0,
    chunks_removed INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
);

-- Fine-grained events within a run.
CREATE TABLE IF NOT EXISTS ingest_events (
    event_id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    event_type TEXT NOT NULL,
    source_id TEXT,
    page INTEGER,
    detail TEXT,
    success INTEGER NOT NULL,
    created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
);
CREATE INDEX IF NOT EXISTS idx_ingest_events_run ON ingest_events(run_id, event_type);
CREATE INDEX IF NOT EXISTS idx_ingest_events_source ON ingest_events(source_id);
`
