// Package corpus turns a manifest of PDF nutrition-guideline documents into
// a curated, labeled set of text chunks for a downstream retrieval pipeline.
//
// Flow: manifest → Loader → (per document) Pipeline → chunks → Validator →
// cleaned chunk list. Documents are processed strictly sequentially in
// manifest order, pages in page order; the chunk list has a single writer.
package corpus

import (
	"github.com/nutriguide/nutricorpus/contentfilter"
)

// Chunk is one admitted, classified page of source text plus metadata, the
// atomic unit handed to the downstream indexer. Chunks are immutable once
// emitted; the validator may remove them but never edits them.
type Chunk struct {
	SourceID       string                     `json:"source"`
	SourceFile     string                     `json:"source_file"`
	PageNumber     int                        `json:"page"`
	DocumentType   contentfilter.DocumentType `json:"document_type"`
	Topics         []string                   `json:"topics"`
	LifeStages     []string                   `json:"life_stages"`
	ContainsTables bool                       `json:"contains_tables"`
	SafetyLevel    contentfilter.SafetyLevel  `json:"safety_level"`
	Content        string                     `json:"content"`
}

// Metadata returns the chunk's metadata as a flat key-value record, the
// shape the downstream indexing service consumes.
func (c *Chunk) Metadata() map[string]any {
	return map[string]any{
		"source":          c.SourceID,
		"source_file":     c.SourceFile,
		"page":            c.PageNumber,
		"document_type":   string(c.DocumentType),
		"topics":          c.Topics,
		"life_stages":     c.LifeStages,
		"contains_tables": c.ContainsTables,
		"safety_level":    string(c.SafetyLevel),
	}
}

// Report summarises one Load run.
type Report struct {
	DocumentsOK     int
	DocumentsFailed int
	// ChunksBeforeValidation counts chunks emitted by the per-document
	// pipelines, before the validator pass.
	ChunksBeforeValidation int
	ChunksRemoved          int
	// Failures lists per-document errors that were recovered locally.
	Failures []DocumentFailure
}

// DocumentFailure records one manifest entry that contributed zero chunks.
type DocumentFailure struct {
	SourceID string
	Err      error
}
