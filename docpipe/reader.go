// Package docpipe extracts per-page text from PDF files.
//
// The primary engine parses pdfcpu content streams directly (Tj/TJ/' text
// operators). When a page's extraction comes back empty or garbled (typical
// for CIDFont PDFs without a ToUnicode map) a second engine based on
// ledongthuc/pdf is consulted for that page.
//
// Usage:
//
//	r, err := docpipe.Open("guidelines.pdf", docpipe.Config{})
//	defer r.Close()
//	for n := 1; n <= r.PageCount(); n++ {
//		text, err := r.PageText(n)
//		...
//	}
package docpipe

import (
	"fmt"
	"log/slog"
	"os"

	ltpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Reader exposes page-level text extraction for a single PDF document.
// It is not safe for concurrent use. The underlying file handles live until
// Close, so a Reader must not outlive the processing of its document.
type Reader struct {
	cfg    Config
	path   string
	pdfCtx *model.Context
	logger *slog.Logger

	hasImages bool

	// Fallback engine state, opened lazily on the first garbled page.
	fbFile   *os.File
	fbReader *ltpdf.Reader
	fbFailed bool
}

// Open reads and validates a PDF file. The returned Reader must be closed.
func Open(path string, cfg Config) (*Reader, error) {
	cfg.defaults()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > cfg.MaxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), cfg.MaxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	pdfCtx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read %s: %w", path, err)
	}

	r := &Reader{
		cfg:       cfg,
		path:      path,
		pdfCtx:    pdfCtx,
		logger:    cfg.Logger,
		hasImages: detectImageStreams(pdfCtx),
	}
	return r, nil
}

// Close releases the fallback engine's file handle, if one was opened.
func (r *Reader) Close() error {
	if r.fbFile != nil {
		err := r.fbFile.Close()
		r.fbFile = nil
		r.fbReader = nil
		return err
	}
	return nil
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.pdfCtx.PageCount
}

// HasImageStreams reports whether the document contains image XObjects.
func (r *Reader) HasImageStreams() bool {
	return r.hasImages
}

// PageText extracts the text of one page (1-based). An empty string with a
// nil error means the page genuinely carries no extractable text.
func (r *Reader) PageText(pageNr int) (string, error) {
	if pageNr < 1 || pageNr > r.pdfCtx.PageCount {
		return "", fmt.Errorf("page %d out of range (1..%d)", pageNr, r.pdfCtx.PageCount)
	}

	text, err := extractPageContent(r.pdfCtx, pageNr)
	if err != nil {
		r.logger.Debug("content-stream extraction failed, trying fallback",
			"path", r.path, "page", pageNr, "error", err)
		return r.fallbackPageText(pageNr)
	}

	if text != "" && computePrintableRatio(text) >= r.cfg.MinPrintableRatio {
		return text, nil
	}

	// Empty or garbled: give the plain-text engine a chance, but never
	// let it make the result worse.
	fbText, fbErr := r.fallbackPageText(pageNr)
	if fbErr != nil || fbText == "" {
		return text, nil
	}
	return fbText, nil
}

// fallbackPageText extracts one page via ledongthuc/pdf, opening the engine
// on first use. A failed open is remembered so it is attempted only once.
func (r *Reader) fallbackPageText(pageNr int) (string, error) {
	if r.fbFailed {
		return "", fmt.Errorf("fallback engine unavailable for %s", r.path)
	}
	if r.fbReader == nil {
		f, reader, err := ltpdf.Open(r.path)
		if err != nil {
			r.fbFailed = true
			return "", fmt.Errorf("fallback open %s: %w", r.path, err)
		}
		r.fbFile = f
		r.fbReader = reader
	}

	if pageNr > r.fbReader.NumPage() {
		return "", fmt.Errorf("fallback: page %d out of range", pageNr)
	}
	p := r.fbReader.Page(pageNr)
	if p.V.IsNull() {
		return "", nil
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("fallback extract page %d: %w", pageNr, err)
	}
	return cleanExtractedText(text), nil
}

// Quality computes document-level extraction metrics over the concatenated
// page text the caller collected.
func (r *Reader) Quality(fullText string) *ExtractionQuality {
	var charsPerPage float64
	if r.pdfCtx.PageCount > 0 {
		charsPerPage = float64(len([]rune(fullText))) / float64(r.pdfCtx.PageCount)
	}
	return &ExtractionQuality{
		PageCount:       r.pdfCtx.PageCount,
		CharsPerPage:    charsPerPage,
		PrintableRatio:  computePrintableRatio(fullText),
		WordlikeRatio:   computeWordlikeRatio(fullText),
		HasImageStreams: r.hasImages,
	}
}
