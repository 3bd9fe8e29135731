package corpus

import (
	"log/slog"

	"github.com/nutriguide/nutricorpus/contentfilter"
	"github.com/nutriguide/nutricorpus/docpipe"
	"github.com/nutriguide/nutricorpus/observability"
)

// Config configures a corpus Loader.
type Config struct {
	// Extract configures the PDF page reader.
	Extract docpipe.Config `yaml:"extract"`

	// Policy holds the page-admission cutoffs. Zero value means defaults.
	Policy contentfilter.Policy `yaml:"policy"`

	// Logger receives run progress and recovered failures.
	Logger *slog.Logger `json:"-" yaml:"-"`

	// Events receives the ingest audit trail. Defaults to a no-op sink.
	Events observability.EventSink `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Events == nil {
		c.Events = observability.NopSink{}
	}
	if c.Policy == (contentfilter.Policy{}) {
		c.Policy = contentfilter.DefaultPolicy()
	}
	if c.Extract.Logger == nil {
		c.Extract.Logger = c.Logger
	}
}
