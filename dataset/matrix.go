package dataset

// Matrix is a read-mostly numeric matrix aligned to a Dataset's tables.
//
// The filter core never mutates matrix values; it only narrows rows and
// columns. Implementations return a new handle from the subset methods,
// leaving the receiver untouched.
type Matrix interface {
	// Rows returns the number of rows (cells).
	Rows() int
	// Cols returns the number of columns (genes).
	Cols() int
	// At returns the value at row i, column j.
	At(i, j int) float64
	// RowNonZero calls fn for every non-zero entry of row i in
	// ascending column order.
	RowNonZero(i int, fn func(j int, v float64))
	// SubsetRows returns a matrix holding the rows in keep, in order.
	SubsetRows(keep []int) Matrix
	// SubsetCols returns a matrix holding the columns in keep, in order.
	SubsetCols(keep []int) Matrix
}

// Dense is a row-major dense Matrix.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense creates a dense matrix from row-major data.
// len(data) must equal rows*cols.
func NewDense(rows, cols int, data []float64) *Dense {
	if len(data) != rows*cols {
		panic("dataset: dense data length does not match dimensions")
	}
	return &Dense{rows: rows, cols: cols, data: data}
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the value at row i, column j.
func (m *Dense) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// RowNonZero calls fn for every non-zero entry of row i.
func (m *Dense) RowNonZero(i int, fn func(j int, v float64)) {
	row := m.data[i*m.cols : (i+1)*m.cols]
	for j, v := range row {
		if v != 0 {
			fn(j, v)
		}
	}
}

// SubsetRows returns a dense matrix holding the rows in keep.
func (m *Dense) SubsetRows(keep []int) Matrix {
	data := make([]float64, 0, len(keep)*m.cols)
	for _, r := range keep {
		data = append(data, m.data[r*m.cols:(r+1)*m.cols]...)
	}
	return &Dense{rows: len(keep), cols: m.cols, data: data}
}

// SubsetCols returns a dense matrix holding the columns in keep.
func (m *Dense) SubsetCols(keep []int) Matrix {
	data := make([]float64, 0, m.rows*len(keep))
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		for _, c := range keep {
			data = append(data, row[c])
		}
	}
	return &Dense{rows: m.rows, cols: len(keep), data: data}
}
