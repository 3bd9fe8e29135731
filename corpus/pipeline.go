package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nutriguide/nutricorpus/contentfilter"
	"github.com/nutriguide/nutricorpus/docpipe"
	"github.com/nutriguide/nutricorpus/observability"
)

// Pipeline processes one document end to end: open the PDF, iterate pages,
// apply admission filtering and classification, emit chunks.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger
}

// NewPipeline creates a Pipeline with the given configuration.
func NewPipeline(cfg Config) *Pipeline {
	cfg.defaults()
	return &Pipeline{cfg: cfg, logger: cfg.Logger}
}

// ProcessDocument turns one manifest entry into chunks. A missing file or an
// unreadable PDF is a document-level error aborting this document only. A
// page that fails to extract is logged and skipped; the document continues.
// Zero resulting chunks is not an error.
func (p *Pipeline) ProcessDocument(ctx context.Context, entry ManifestEntry) ([]Chunk, error) {
	if _, err := os.Stat(entry.Path); err != nil {
		return nil, fmt.Errorf("document missing: %s for %s: %w", entry.Path, entry.ID, err)
	}

	reader, err := docpipe.Open(entry.Path, p.cfg.Extract)
	if err != nil {
		return nil, fmt.Errorf("pdf read error %s: %w", entry.Path, err)
	}
	defer reader.Close()

	totalPages := reader.PageCount()
	docType := contentfilter.ClassifyDocumentType(entry.ID)
	sourceFile := filepath.Base(entry.Path)

	p.logger.Info("processing document",
		"source_id", entry.ID, "path", entry.Path, "pages", totalPages, "document_type", docType)

	var (
		chunks   []Chunk
		fullText strings.Builder
		valid    int
		skipped  int
	)

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := reader.PageText(pageNum)
		if err != nil {
			p.logger.Warn("page extraction failed",
				"source_id", entry.ID, "page", pageNum, "error", err)
			p.cfg.Events.Record(ctx, observability.Event{
				Type: observability.EventPageFailed, SourceID: entry.ID,
				Page: pageNum, Detail: err.Error(),
			})
			skipped++
			continue
		}

		fullText.WriteString(text)
		fullText.WriteByte('\n')

		nutritionCount := contentfilter.NutritionKeywordCount(text)

		if p.cfg.Policy.IsLowValuePage(text, pageNum, totalPages, nutritionCount) {
			p.logger.Debug("page skipped",
				"source_id", entry.ID, "page", pageNum, "nutrition_keywords", nutritionCount)
			p.cfg.Events.Record(ctx, observability.Event{
				Type: observability.EventPageSkipped, SourceID: entry.ID,
				Page: pageNum, Detail: "low value", Success: true,
			})
			skipped++
			continue
		}
		valid++

		// Life stages only on pages with real nutrition signal; low-signal
		// pages would produce false demographic tags.
		lifeStages := []string{contentfilter.StageGeneral}
		if nutritionCount >= p.cfg.Policy.MinNutritionKeywords {
			lifeStages = contentfilter.DetectLifeStages(text)
		}

		// Safety is classified on the raw page text, before table markers
		// are added.
		safety := contentfilter.ClassifySafety(text, nutritionCount, p.cfg.Policy.MinNutritionKeywords)

		containsTables := contentfilter.DetectNutrientTables(text)
		content := text
		if containsTables {
			content = contentfilter.ExtractTableContent(text)
		}

		chunks = append(chunks, Chunk{
			SourceID:       entry.ID,
			SourceFile:     sourceFile,
			PageNumber:     pageNum,
			DocumentType:   docType,
			Topics:         entry.Topics,
			LifeStages:     lifeStages,
			ContainsTables: containsTables,
			SafetyLevel:    safety,
			Content:        content,
		})
	}

	quality := reader.Quality(fullText.String())
	p.logger.Info("document processed",
		"source_id", entry.ID, "valid_pages", valid, "skipped_pages", skipped,
		"chunks", len(chunks), "printable_ratio", quality.PrintableRatio,
		"wordlike_ratio", quality.WordlikeRatio)
	if quality.NeedsOCR() {
		p.logger.Warn("extraction quality poor, document may need OCR",
			"source_id", entry.ID, "chars_per_page", quality.CharsPerPage,
			"printable_ratio", quality.PrintableRatio)
	}

	if len(chunks) == 0 {
		p.logger.Warn("no valid chunks from document, may need manual review",
			"source_id", entry.ID)
	}

	return chunks, nil
}
