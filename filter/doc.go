// Package filter compiles raw, possibly ambiguous condition specs into
// predicates bound to a concrete attribute of a concrete table.
//
// Compilation resolves every condition name through the attribute catalog,
// drops ambiguous and unknown names with a structured diagnostic,
// recognizes the two derived-metric name patterns
// (pct_counts_in_top_<N>_genes and pct_counts_<group>) and collects the
// metric requests they imply, and materializes external membership value
// sources. Only conjunctive (AND) combination is supported; there is no
// OR/NOT composition.
package filter
