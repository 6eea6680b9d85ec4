package annfilter

import (
	"context"
	"io"

	"github.com/hupe1980/annfilter/catalog"
	"github.com/hupe1980/annfilter/dataset"
	"github.com/hupe1980/annfilter/filter"
	"github.com/hupe1980/annfilter/mask"
	"github.com/hupe1980/annfilter/qc"
)

// Spec aliases the condition spec consumed by Filter.
type Spec = filter.Spec

// RangeSpec aliases the raw numeric range condition.
type RangeSpec = filter.RangeSpec

// CategorySpec aliases the raw membership condition.
type CategorySpec = filter.CategorySpec

// Filter narrows the dataset to the cells and genes satisfying every
// condition in spec, mutating the dataset in place and returning the
// same handle.
//
// The pass runs strictly forward: the mito gene flag is synthesized from
// the configured gene-name column, the attribute catalog is discovered,
// conditions are compiled against it (ambiguous and unknown names are
// dropped with a diagnostic, never an error), base QC metrics are
// materialized, derived metrics are synthesized only when a condition
// requires one, and finally both tables and the shared matrix shrink
// together under the combined masks.
//
// Filter takes exclusive access to the dataset for the duration of the
// call; no other goroutine may observe it mid-mutation.
func Filter(ctx context.Context, ds *dataset.Dataset, spec Spec, optFns ...Option) (*dataset.Dataset, error) {
	o := applyOptions(optFns)
	if ds == nil {
		return nil, ErrNilDataset
	}

	cellsBefore, genesBefore := ds.NumObs(), ds.NumVar()

	ensureMitoFlag(ds, o.geneNameColumn, o.sink)

	cat := catalog.Discover(ds)

	resolved, request, err := filter.Compile(ctx, cat, spec, o.sink)
	if err != nil {
		return nil, err
	}
	o.logger.LogCompile(ctx,
		len(resolved.Cells.Ranges)+len(resolved.Genes.Ranges),
		len(resolved.Cells.Memberships)+len(resolved.Genes.Memberships),
		len(spec.Ranges)+len(spec.Categories)+len(spec.Subsets)-
			len(resolved.Cells.Ranges)-len(resolved.Genes.Ranges)-
			len(resolved.Cells.Memberships)-len(resolved.Genes.Memberships),
	)

	if err := qc.EnsureBaseMetrics(ds); err != nil {
		return nil, err
	}

	if err := qc.Synthesize(ctx, ds, request); err != nil {
		o.logger.LogSynthesize(ctx, request.QCVars, request.PercentTop, err)
		return nil, err
	}
	if !request.Empty() {
		o.logger.LogSynthesize(ctx, request.QCVars, request.PercentTop, nil)
	}

	if err := mask.Apply(ds, resolved); err != nil {
		return nil, err
	}

	o.logger.LogFilter(ctx, cellsBefore, ds.NumObs(), genesBefore, ds.NumVar())

	return ds, nil
}

// List renders the discovered attribute catalog of the dataset to w as a
// deterministic indented listing, without mutating annotation values.
//
// List and Filter are the two mutually exclusive modes of a filtering
// invocation: listing is for discovering what can be filtered on.
func List(ds *dataset.Dataset, w io.Writer, optFns ...Option) error {
	o := applyOptions(optFns)
	if ds == nil {
		return ErrNilDataset
	}

	ensureMitoFlag(ds, o.geneNameColumn, o.sink)

	return catalog.Discover(ds).Render(w)
}
