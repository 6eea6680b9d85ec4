package mask

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/annfilter/catalog"
	"github.com/hupe1980/annfilter/frame"
)

// Mask is a row-selection bitmap over a table with n rows. A fresh mask
// selects every row; predicates only ever narrow it.
type Mask struct {
	bm *roaring.Bitmap
	n  int
}

// New creates an all-true mask over n rows.
func New(n int) *Mask {
	bm := roaring.New()
	bm.AddRange(0, uint64(n))
	return &Mask{bm: bm, n: n}
}

// Len returns the number of rows the mask spans.
func (m *Mask) Len() int { return m.n }

// Cardinality returns the number of selected rows.
func (m *Mask) Cardinality() int {
	return int(m.bm.GetCardinality())
}

// Contains reports whether row i is selected.
func (m *Mask) Contains(i int) bool {
	return m.bm.Contains(uint32(i))
}

// Indices returns the selected row positions in ascending order.
func (m *Mask) Indices() []int {
	out := make([]int, 0, m.Cardinality())
	it := m.bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Narrow intersects the mask with the rows for which keep returns true.
// keep is only consulted for rows still selected.
func (m *Mask) Narrow(keep func(i int) bool) {
	pass := roaring.New()
	it := m.bm.Iterator()
	for it.HasNext() {
		i := it.Next()
		if keep(int(i)) {
			pass.Add(i)
		}
	}
	m.bm = pass
}

// ErrMissingColumn indicates a resolved predicate whose backing column is
// absent from the table; metric synthesis must run before masks are
// built.
type ErrMissingColumn struct {
	Attr string
}

func (e *ErrMissingColumn) Error() string {
	return fmt.Sprintf("column %q not present when building mask", e.Attr)
}

// rangeNarrow narrows the mask by min <= value <= max, inclusive on both
// ends.
func rangeNarrow(m *Mask, col *frame.Column, min, max float64) {
	m.Narrow(func(i int) bool {
		v, ok := col.Float64At(i)
		return ok && v >= min && v <= max
	})
}

// memberNarrow narrows the mask by set membership of the row's value.
// The index pseudo-attribute matches against row names.
func memberNarrow(m *Mask, f *frame.Frame, attr string, values []string) error {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}

	if attr == catalog.IndexAttr {
		index := f.Index()
		m.Narrow(func(i int) bool {
			_, ok := allowed[index[i]]
			return ok
		})
		return nil
	}

	col, ok := f.Column(attr)
	if !ok {
		return &ErrMissingColumn{Attr: attr}
	}
	m.Narrow(func(i int) bool {
		_, ok := allowed[col.StringAt(i)]
		return ok
	})
	return nil
}
