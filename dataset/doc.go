// Package dataset holds the annotated expression dataset: two row-aligned
// annotation frames (cells and genes) plus the expression matrix they
// describe.
//
// The matrix is consumed as read-only numeric storage with dense and CSR
// implementations; the only structural operations the filter core performs
// on it are row and column subsetting, which always travel together with
// the corresponding table subset so the alignment invariant never breaks.
package dataset
