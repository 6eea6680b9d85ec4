package mask

import (
	"github.com/hupe1980/annfilter/dataset"
	"github.com/hupe1980/annfilter/filter"
	"github.com/hupe1980/annfilter/frame"
)

// Build evaluates one table's predicate list into a mask, starting from
// all-true and narrowing conjunctively.
func Build(f *frame.Frame, preds *filter.Predicates) (*Mask, error) {
	m := New(f.Len())

	for _, rc := range preds.Ranges {
		col, ok := f.Column(rc.Attr)
		if !ok {
			return nil, &ErrMissingColumn{Attr: rc.Attr}
		}
		rangeNarrow(m, col, rc.Min, rc.Max)
	}

	for _, mc := range preds.Memberships {
		if err := memberNarrow(m, f, mc.Attr, mc.Values); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Apply builds both tables' masks and narrows the dataset in place,
// cells first, then genes, preserving relative row order. The caller's
// dataset handle reflects the filtered result.
func Apply(ds *dataset.Dataset, resolved *filter.Resolved) error {
	cellMask, err := Build(ds.Obs, &resolved.Cells)
	if err != nil {
		return err
	}
	geneMask, err := Build(ds.Var, &resolved.Genes)
	if err != nil {
		return err
	}

	ds.SubsetObs(cellMask.Indices())
	ds.SubsetVar(geneMask.Indices())

	return nil
}
