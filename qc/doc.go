// Package qc computes the quality-control metrics that filtering
// conditions can reference.
//
// EnsureBaseMetrics materializes the always-advertised per-cell and
// per-gene summary columns; Synthesize materializes the derived
// percentage metrics (percent of counts in a flagged gene group, percent
// of counts among the top-N expressed genes) that condition compilation
// requested. Synthesis is comparatively expensive, so an empty request
// skips it entirely.
package qc
