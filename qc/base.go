package qc

import (
	"github.com/hupe1980/annfilter/dataset"
	"github.com/hupe1980/annfilter/frame"
)

// Base metric column names guaranteed by EnsureBaseMetrics.
const (
	ColNGenes     = "n_genes"
	ColNCounts    = "n_counts"
	ColNCells     = "n_cells"
	ColMeanCounts = "mean_counts"
	ColPctDropout = "pct_dropout_by_counts"
)

// EnsureBaseMetrics materializes the standard per-cell and per-gene
// metrics the attribute catalog advertises: n_genes and n_counts on the
// cell table; n_cells, n_counts, mean_counts and pct_dropout_by_counts on
// the gene table.
//
// Existing columns are left untouched, so the call is idempotent and a
// no-op on a fully preprocessed dataset.
func EnsureBaseMetrics(ds *dataset.Dataset) error {
	needCellGenes := !ds.Obs.HasColumn(ColNGenes)
	needCellCounts := !ds.Obs.HasColumn(ColNCounts)
	needGeneCells := !ds.Var.HasColumn(ColNCells)
	needGeneCounts := !ds.Var.HasColumn(ColNCounts)
	needMean := !ds.Var.HasColumn(ColMeanCounts)
	needDropout := !ds.Var.HasColumn(ColPctDropout)

	if !needCellGenes && !needCellCounts && !needGeneCells && !needGeneCounts && !needMean && !needDropout {
		return nil
	}

	nObs, nVar := ds.NumObs(), ds.NumVar()
	cellGenes := make([]int64, nObs)
	cellCounts := make([]float64, nObs)
	geneCells := make([]int64, nVar)
	geneCounts := make([]float64, nVar)

	for i := 0; i < nObs; i++ {
		ds.X.RowNonZero(i, func(j int, v float64) {
			cellGenes[i]++
			cellCounts[i] += v
			geneCells[j]++
			geneCounts[j] += v
		})
	}

	if needCellGenes {
		if err := ds.Obs.SetColumn(frame.NewIntColumn(ColNGenes, cellGenes)); err != nil {
			return err
		}
	}
	if needCellCounts {
		if err := ds.Obs.SetFloatColumn(ColNCounts, cellCounts); err != nil {
			return err
		}
	}
	if needGeneCells {
		if err := ds.Var.SetColumn(frame.NewIntColumn(ColNCells, geneCells)); err != nil {
			return err
		}
	}
	if needGeneCounts {
		if err := ds.Var.SetFloatColumn(ColNCounts, geneCounts); err != nil {
			return err
		}
	}
	if needMean {
		mean := make([]float64, nVar)
		if nObs > 0 {
			for j := range mean {
				mean[j] = geneCounts[j] / float64(nObs)
			}
		}
		if err := ds.Var.SetFloatColumn(ColMeanCounts, mean); err != nil {
			return err
		}
	}
	if needDropout {
		dropout := make([]float64, nVar)
		if nObs > 0 {
			for j := range dropout {
				dropout[j] = (1 - float64(geneCells[j])/float64(nObs)) * 100
			}
		}
		if err := ds.Var.SetFloatColumn(ColPctDropout, dropout); err != nil {
			return err
		}
	}

	return nil
}
