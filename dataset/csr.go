package dataset

import "sort"

// CSR is a compressed sparse row Matrix. Expression matrices are
// typically >90% zeros, so this is the representation the CLI loader
// produces.
type CSR struct {
	rows, cols int
	indptr     []int
	indices    []int
	data       []float64
}

// NewCSR creates a CSR matrix from standard CSR arrays.
// indptr has rows+1 entries; indices/data hold the non-zeros of each row
// in ascending column order.
func NewCSR(rows, cols int, indptr, indices []int, data []float64) *CSR {
	if len(indptr) != rows+1 {
		panic("dataset: csr indptr length does not match row count")
	}
	if len(indices) != len(data) {
		panic("dataset: csr indices and data lengths differ")
	}
	return &CSR{rows: rows, cols: cols, indptr: indptr, indices: indices, data: data}
}

// NewCSRFromTriplets builds a CSR matrix from unordered (row, col, value)
// triplets, dropping explicit zeros.
func NewCSRFromTriplets(rows, cols int, rowIdx, colIdx []int, values []float64) *CSR {
	type entry struct {
		r, c int
		v    float64
	}
	entries := make([]entry, 0, len(values))
	for i, v := range values {
		if v != 0 {
			entries = append(entries, entry{r: rowIdx[i], c: colIdx[i], v: v})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].r != entries[j].r {
			return entries[i].r < entries[j].r
		}
		return entries[i].c < entries[j].c
	})

	m := &CSR{
		rows:    rows,
		cols:    cols,
		indptr:  make([]int, rows+1),
		indices: make([]int, len(entries)),
		data:    make([]float64, len(entries)),
	}
	for i, e := range entries {
		m.indptr[e.r+1]++
		m.indices[i] = e.c
		m.data[i] = e.v
	}
	for r := 0; r < rows; r++ {
		m.indptr[r+1] += m.indptr[r]
	}
	return m
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.cols }

// At returns the value at row i, column j.
func (m *CSR) At(i, j int) float64 {
	lo, hi := m.indptr[i], m.indptr[i+1]
	idx := sort.SearchInts(m.indices[lo:hi], j)
	if lo+idx < hi && m.indices[lo+idx] == j {
		return m.data[lo+idx]
	}
	return 0
}

// RowNonZero calls fn for every non-zero entry of row i.
func (m *CSR) RowNonZero(i int, fn func(j int, v float64)) {
	for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
		fn(m.indices[k], m.data[k])
	}
}

// SubsetRows returns a CSR matrix holding the rows in keep.
func (m *CSR) SubsetRows(keep []int) Matrix {
	nnz := 0
	for _, r := range keep {
		nnz += m.indptr[r+1] - m.indptr[r]
	}
	out := &CSR{
		rows:    len(keep),
		cols:    m.cols,
		indptr:  make([]int, len(keep)+1),
		indices: make([]int, 0, nnz),
		data:    make([]float64, 0, nnz),
	}
	for i, r := range keep {
		out.indices = append(out.indices, m.indices[m.indptr[r]:m.indptr[r+1]]...)
		out.data = append(out.data, m.data[m.indptr[r]:m.indptr[r+1]]...)
		out.indptr[i+1] = len(out.data)
	}
	return out
}

// SubsetCols returns a CSR matrix holding the columns in keep.
// keep must be ascending so that per-row column order is preserved;
// mask application always produces ascending indices.
func (m *CSR) SubsetCols(keep []int) Matrix {
	remap := make(map[int]int, len(keep))
	for newCol, c := range keep {
		remap[c] = newCol
	}
	out := &CSR{
		rows:   m.rows,
		cols:   len(keep),
		indptr: make([]int, m.rows+1),
	}
	for i := 0; i < m.rows; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			if newCol, ok := remap[m.indices[k]]; ok {
				out.indices = append(out.indices, newCol)
				out.data = append(out.data, m.data[k])
			}
		}
		out.indptr[i+1] = len(out.data)
	}
	return out
}
