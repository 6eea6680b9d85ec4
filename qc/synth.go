package qc

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/annfilter/dataset"
	"github.com/hupe1980/annfilter/filter"
)

// ErrUnknownFlag indicates a requested group metric whose gene flag
// column does not exist.
type ErrUnknownFlag struct {
	Flag string
}

func (e *ErrUnknownFlag) Error() string {
	return fmt.Sprintf("gene flag %q not found for group metric", e.Flag)
}

// PercentTopColumn returns the cell column name of the percent-of-top-N
// metric.
func PercentTopColumn(n int) string {
	return fmt.Sprintf("pct_counts_in_top_%d_genes", n)
}

// GroupColumn returns the cell column name of the percent-of-group
// metric for a gene flag.
func GroupColumn(flag string) string {
	return "pct_counts_" + flag
}

// Synthesize materializes the requested derived metrics as cell table
// columns. It must run before mask building evaluates any predicate
// naming them.
//
// An empty request is a no-op and skips the computation entirely. When
// only group metrics are requested, the top-N list defaults to
// filter.DefaultPercentTop, matching standard QC preprocessing.
//
// All requested metrics are computed in one pass configuration: per-cell
// totals are shared, and the per-metric columns are computed concurrently.
func Synthesize(ctx context.Context, ds *dataset.Dataset, req *filter.MetricRequest) error {
	if req.Empty() {
		return nil
	}

	percentTop := req.PercentTop
	if len(percentTop) == 0 {
		percentTop = filter.DefaultPercentTop
	}

	// Flag lookup happens up front so a bad request fails before any
	// column is written.
	flagSets := make([][]bool, len(req.QCVars))
	for k, flag := range req.QCVars {
		col, ok := ds.Var.Column(flag)
		if !ok {
			return &ErrUnknownFlag{Flag: flag}
		}
		flags := make([]bool, ds.NumVar())
		for j := range flags {
			b, ok := col.BoolAt(j)
			if !ok {
				return &ErrUnknownFlag{Flag: flag}
			}
			flags[j] = b
		}
		flagSets[k] = flags
	}

	totals := rowTotals(ds)

	groupCols := make([][]float64, len(req.QCVars))
	topCols := make([][]float64, len(percentTop))

	g, _ := errgroup.WithContext(ctx)

	for k := range req.QCVars {
		g.Go(func() error {
			groupCols[k] = groupPercent(ds, flagSets[k], totals)
			return nil
		})
	}
	for k, n := range percentTop {
		g.Go(func() error {
			topCols[k] = topPercent(ds, n, totals)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for k, flag := range req.QCVars {
		if err := ds.Obs.SetFloatColumn(GroupColumn(flag), groupCols[k]); err != nil {
			return err
		}
	}
	for k, n := range percentTop {
		if err := ds.Obs.SetFloatColumn(PercentTopColumn(n), topCols[k]); err != nil {
			return err
		}
	}

	return nil
}

// rowTotals returns the total counts per cell.
func rowTotals(ds *dataset.Dataset) []float64 {
	totals := make([]float64, ds.NumObs())
	for i := range totals {
		ds.X.RowNonZero(i, func(_ int, v float64) {
			totals[i] += v
		})
	}
	return totals
}

// groupPercent computes, per cell, the percentage of counts attributable
// to flagged genes. Cells with zero counts report zero.
func groupPercent(ds *dataset.Dataset, flags []bool, totals []float64) []float64 {
	out := make([]float64, ds.NumObs())
	for i := range out {
		if totals[i] == 0 {
			continue
		}
		var sum float64
		ds.X.RowNonZero(i, func(j int, v float64) {
			if flags[j] {
				sum += v
			}
		})
		out[i] = sum / totals[i] * 100
	}
	return out
}

// topPercent computes, per cell, the percentage of counts falling on the
// n highest-expressed genes of that cell. Cells with zero counts report
// zero.
func topPercent(ds *dataset.Dataset, n int, totals []float64) []float64 {
	out := make([]float64, ds.NumObs())
	values := make([]float64, 0, ds.NumVar())
	for i := range out {
		if totals[i] == 0 {
			continue
		}
		values = values[:0]
		ds.X.RowNonZero(i, func(_ int, v float64) {
			values = append(values, v)
		})
		sort.Sort(sort.Reverse(sort.Float64Slice(values)))

		limit := n
		if limit > len(values) {
			limit = len(values)
		}
		var sum float64
		for _, v := range values[:limit] {
			sum += v
		}
		out[i] = sum / totals[i] * 100
	}
	return out
}
