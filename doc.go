// Package annfilter filters the annotation tables of single-cell
// expression datasets with a small declarative condition language.
//
// A dataset carries two row-aligned tables (one per cell, one per gene)
// and the expression matrix they annotate. Which attributes exist is not
// known in advance: annfilter discovers them from the tables' columns,
// classifies them as numerical, categorical or boolean, synthesizes
// standard QC metrics on demand, and applies conjunctive range and
// membership conditions to both tables at once while keeping the matrix
// aligned.
//
// # Filtering
//
//	ds, err := annfilter.Filter(ctx, ds, annfilter.Spec{
//	    Ranges: []annfilter.RangeSpec{
//	        {Name: "n_genes", Min: 200, Max: 5000},
//	        {Name: "pct_counts_mito", Min: 0, Max: 0.1},
//	    },
//	    Categories: []annfilter.CategorySpec{
//	        {Name: "sample", Values: []string{"healthy"}},
//	    },
//	})
//
// Condition names resolve against both tables; a "c:" or "g:" prefix
// disambiguates names that exist in both. Conditions naming derived
// metrics (pct_counts_<flag>, pct_counts_in_top_<N>_genes) trigger their
// computation automatically, and their bounds are given as fractions of
// one. Ambiguous or unknown names drop the condition with a structured
// warning instead of failing the pass.
//
// # Listing
//
// List renders every filterable attribute of a dataset, grouped by table
// and classification:
//
//	_ = annfilter.List(ds, os.Stdout)
//
// # Subpackages
//
//   - dataset, frame: the annotated dataset model
//   - catalog: attribute discovery and name resolution
//   - filter: condition compilation
//   - qc: metric computation
//   - mask: bitmap row selection
//   - subset: external line-delimited value lists (local, S3, MinIO)
//   - diag: structured warning sink
package annfilter
