package corpus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nutriguide/nutricorpus/observability"
)

// Loader is the single consumer-facing entry point: it reads a manifest,
// runs the per-document pipeline over every entry, and validates the
// aggregated chunk set.
type Loader struct {
	cfg       Config
	logger    *slog.Logger
	pipeline  *Pipeline
	validator *Validator
}

// NewLoader creates a Loader with the given configuration.
func NewLoader(cfg Config) *Loader {
	cfg.defaults()
	return &Loader{
		cfg:       cfg,
		logger:    cfg.Logger,
		pipeline:  NewPipeline(cfg),
		validator: NewValidator(cfg.Logger, cfg.Events),
	}
}

// Load processes every manifest entry in order and returns the validated
// chunk list plus a run report. A missing or unparseable manifest is fatal.
// A failing document is recorded in the report and skipped; the run
// continues with the remaining entries. No retries: every failure here is a
// deterministic content or parse problem.
func (l *Loader) Load(ctx context.Context, manifestPath string) ([]Chunk, *Report, error) {
	l.logger.Info("starting corpus build", "manifest", manifestPath)

	entries, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, nil, err
	}
	l.logger.Info("manifest loaded", "documents", len(entries))

	report := &Report{}
	var all []Chunk

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		chunks, err := l.pipeline.ProcessDocument(ctx, entry)
		if err != nil {
			// Cancellation is caller-imposed, not a document failure; it
			// must abort the run, never downgrade to a recovered entry.
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, nil, err
			}
			report.DocumentsFailed++
			report.Failures = append(report.Failures, DocumentFailure{SourceID: entry.ID, Err: err})
			l.logger.Error("document failed", "source_id", entry.ID, "error", err)
			l.cfg.Events.Record(ctx, observability.Event{
				Type: observability.EventDocumentFailed, SourceID: entry.ID, Detail: err.Error(),
			})
			continue
		}

		report.DocumentsOK++
		all = append(all, chunks...)
		l.cfg.Events.Record(ctx, observability.Event{
			Type:     observability.EventDocumentProcessed,
			SourceID: entry.ID,
			Detail:   fmt.Sprintf("%d chunks", len(chunks)),
			Success:  true,
		})
	}

	report.ChunksBeforeValidation = len(all)
	l.logger.Info("pre-validation summary",
		"documents_ok", report.DocumentsOK,
		"documents_failed", report.DocumentsFailed,
		"chunks", len(all))

	cleaned, err := l.validator.Validate(ctx, all)
	if err != nil {
		return nil, report, err
	}
	report.ChunksRemoved = len(all) - len(cleaned)

	return cleaned, report, nil
}
