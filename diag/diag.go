// Package diag provides the structured diagnostics sink threaded through
// attribute resolution and condition compilation.
//
// Dropped conditions and skipped synthesis steps are reported as Records
// instead of global log side effects, so tests assert on structured
// diagnostics rather than log text.
package diag

import (
	"log/slog"
)

// Code classifies a diagnostic record.
type Code string

const (
	// CodeAmbiguousAttribute marks a condition whose attribute exists in
	// both the cell and gene table.
	CodeAmbiguousAttribute Code = "ambiguous_attribute"
	// CodeUnknownAttribute marks a condition whose attribute exists in
	// neither table and matches no derived-metric pattern.
	CodeUnknownAttribute Code = "unknown_attribute"
	// CodeNoMitoGenes marks a skipped mito-flag synthesis because no gene
	// name carries the mitochondrial prefix.
	CodeNoMitoGenes Code = "no_mito_genes"
	// CodeMissingGeneColumn marks a skipped mito-flag synthesis because
	// the configured gene-name column is absent.
	CodeMissingGeneColumn Code = "missing_gene_column"
)

// Record is a single non-fatal diagnostic.
type Record struct {
	Code    Code
	Attr    string
	Message string
}

// Sink receives diagnostic records.
type Sink interface {
	Warn(Record)
}

// Collector is a Sink that retains every record, for tests and callers
// that want to surface dropped conditions.
type Collector struct {
	Records []Record
}

// Warn appends the record.
func (c *Collector) Warn(r Record) {
	c.Records = append(c.Records, r)
}

// Has reports whether a record with the given code was collected.
func (c *Collector) Has(code Code) bool {
	for _, r := range c.Records {
		if r.Code == code {
			return true
		}
	}
	return false
}

// Discard is a Sink that drops all records.
type Discard struct{}

// Warn drops the record.
func (Discard) Warn(Record) {}

// Logging is a Sink that forwards records to a slog logger at warn level.
type Logging struct {
	Logger *slog.Logger
}

// Warn logs the record.
func (l Logging) Warn(r Record) {
	l.Logger.Warn(r.Message, "code", string(r.Code), "attr", r.Attr)
}
