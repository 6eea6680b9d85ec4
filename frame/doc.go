// Package frame provides the typed column tables that carry cell and gene
// annotations.
//
// A Frame is a small column store: named, kind-typed columns over a shared
// row-name index. Columns are classified by an explicit Kind enum
// (Int/Float/String/Bool) rather than runtime duck-typing, so downstream
// schema discovery reasons over kinds, not dynamic introspection.
//
// Frames mutate in place: annotation columns are added or replaced as
// derived metrics are materialized, and row subsetting narrows the index
// and every column together.
package frame
