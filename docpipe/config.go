package docpipe

import "log/slog"

// Config configures a PDF page reader.
type Config struct {
	// MaxFileSize is the maximum file size to process (default: 100 MB).
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"`

	// MinPrintableRatio is the printable-character ratio below which a
	// page's content-stream extraction is considered garbled and the
	// plain-text fallback engine is consulted (default: 0.85).
	MinPrintableRatio float64 `json:"min_printable_ratio" yaml:"min_printable_ratio"`

	// Logger for debug/error messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 100 * 1024 * 1024
	}
	if c.MinPrintableRatio <= 0 {
		c.MinPrintableRatio = 0.85
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
