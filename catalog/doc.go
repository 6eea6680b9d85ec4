// Package catalog discovers which attributes exist on the cell and gene
// tables and resolves possibly ambiguous attribute names against them.
//
// Attribute names are not known in advance: they are classified from the
// tables' column kinds into numerical, categorical and boolean sets, with
// a handful of synthetic names added for metrics that preprocessing
// guarantees (or metric synthesis can materialize on demand). A name may
// exist in both tables; Resolve reports that as an explicit match count
// rather than an error, and the condition compiler decides policy.
package catalog
