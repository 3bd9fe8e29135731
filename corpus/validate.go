package corpus

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nutriguide/nutricorpus/contentfilter"
	"github.com/nutriguide/nutricorpus/observability"
)

// domainReference marks publication boilerplate pointing at the source
// portal; such chunks are only kept when they carry real nutrition signal.
const domainReference = "dietaryguidelines.gov"

const removedPreviewLimit = 5

// Validator is the second-pass quality gate: it rescans aggregated chunks
// for administrative content the page-level filter missed and strips the
// offenders.
type Validator struct {
	logger *slog.Logger
	events observability.EventSink
}

// NewValidator creates a Validator reporting through logger and events.
func NewValidator(logger *slog.Logger, events observability.EventSink) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	if events == nil {
		events = observability.NopSink{}
	}
	return &Validator{logger: logger, events: events}
}

// Validate removes chunks with residual administrative signal, preserving
// the relative order of the rest. If removal would leave a non-empty input
// with zero chunks, it returns ErrAllChunksRemoved; an empty corpus must
// never be returned silently.
func (v *Validator) Validate(ctx context.Context, chunks []Chunk) ([]Chunk, error) {
	if len(chunks) == 0 {
		return chunks, nil
	}

	kept := make([]Chunk, 0, len(chunks))
	removed := 0
	for i := range chunks {
		c := &chunks[i]
		if !v.problematic(c) {
			kept = append(kept, *c)
			continue
		}
		removed++
		if removed <= removedPreviewLimit {
			v.logger.Warn("removing low-quality chunk",
				"source_id", c.SourceID, "page", c.PageNumber,
				"preview", preview(c.Content, 150))
		}
		v.events.Record(ctx, observability.Event{
			Type: observability.EventChunkRemoved, SourceID: c.SourceID,
			Page: c.PageNumber, Detail: preview(c.Content, 150),
		})
	}

	if removed == 0 {
		v.logger.Info("all chunks passed validation", "chunks", len(kept))
		return kept, nil
	}

	if removed > removedPreviewLimit {
		v.logger.Warn("more low-quality chunks removed", "additional", removed-removedPreviewLimit)
	}
	v.logger.Warn("validation removed chunks", "removed", removed, "remaining", len(kept))

	if len(kept) == 0 {
		v.logger.Error("all chunks removed during validation, manual intervention required")
		return nil, ErrAllChunksRemoved
	}
	return kept, nil
}

// problematic flags a chunk with residual administrative content: an
// admin-heavy low-signal short chunk, a suggested-citation block, or a
// domain-reference chunk without nutrition substance.
func (v *Validator) problematic(c *Chunk) bool {
	lower := strings.ToLower(c.Content)
	adminCount := 0
	for _, kw := range contentfilter.ValidatorAdminVocabulary {
		if strings.Contains(lower, kw) {
			adminCount++
		}
	}
	nutritionCount := contentfilter.NutritionKeywordCount(c.Content)
	wordCount := len(strings.Fields(lower))

	if adminCount >= 2 && nutritionCount < 2 && wordCount < 300 {
		return true
	}
	if strings.Contains(lower, "suggested citation") {
		return true
	}
	if strings.Contains(lower, domainReference) && nutritionCount < 3 {
		return true
	}
	return false
}

func preview(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
