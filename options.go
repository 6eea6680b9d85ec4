package annfilter

import (
	"log/slog"

	"github.com/hupe1980/annfilter/catalog"
	"github.com/hupe1980/annfilter/diag"
)

type options struct {
	geneNameColumn string
	logger         *Logger
	sink           diag.Sink
}

// Option configures Filter and List behavior.
type Option func(*options)

// WithGeneNameColumn configures the gene table column holding gene names,
// used to locate mitochondrial genes by their "MT-" prefix. The default
// is the row-identity index.
//
// Pass an empty name to disable mito-flag synthesis entirely.
func WithGeneNameColumn(name string) Option {
	return func(o *options) {
		o.geneNameColumn = name
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithDiagnostics configures the sink receiving structured warnings for
// dropped conditions and skipped synthesis steps. The default forwards
// them to the configured logger.
func WithDiagnostics(sink diag.Sink) Option {
	return func(o *options) {
		if sink == nil {
			sink = diag.Discard{}
		}
		o.sink = sink
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		geneNameColumn: catalog.IndexAttr,
		logger:         NewTextLogger(slog.LevelWarn),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.sink == nil {
		o.sink = diag.Logging{Logger: o.logger.Logger}
	}
	return o
}
