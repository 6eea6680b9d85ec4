package frame

import (
	"fmt"
)

// Frame is a column-oriented annotation table with a row-name index.
//
// Columns are kept in insertion order so that schema listings and renders
// are deterministic. All columns share the frame's row count.
type Frame struct {
	index  []string
	cols   []*Column
	byName map[string]int
}

// New creates a Frame with the given row names and no columns.
func New(index []string) *Frame {
	return &Frame{
		index:  index,
		byName: make(map[string]int),
	}
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.index)
}

// Index returns the row names. The slice must not be mutated.
func (f *Frame) Index() []string {
	return f.index
}

// Columns returns all columns in insertion order.
func (f *Frame) Columns() []*Column {
	return f.cols
}

// Column returns the named column.
func (f *Frame) Column(name string) (*Column, bool) {
	i, ok := f.byName[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// HasColumn reports whether a column with the given name exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.byName[name]
	return ok
}

// SetColumn adds a column, or replaces an existing column of the same name
// in place (keeping its position in the column order).
func (f *Frame) SetColumn(col *Column) error {
	if col.Len() != f.Len() {
		return &ErrLengthMismatch{Column: col.Name(), Expected: f.Len(), Actual: col.Len()}
	}
	if i, ok := f.byName[col.Name()]; ok {
		f.cols[i] = col
		return nil
	}
	f.byName[col.Name()] = len(f.cols)
	f.cols = append(f.cols, col)
	return nil
}

// SetFloatColumn sets a float column from raw values.
func (f *Frame) SetFloatColumn(name string, values []float64) error {
	return f.SetColumn(NewFloatColumn(name, values))
}

// SetBoolColumn sets a bool column from raw values.
func (f *Frame) SetBoolColumn(name string, values []bool) error {
	return f.SetColumn(NewBoolColumn(name, values))
}

// Subset narrows the frame in place to the rows in keep, in the given order.
// Indices must be valid row positions.
func (f *Frame) Subset(keep []int) {
	index := make([]string, len(keep))
	for i, r := range keep {
		index[i] = f.index[r]
	}
	f.index = index
	for i, col := range f.cols {
		f.cols[i] = col.subset(keep)
	}
}

// ErrLengthMismatch indicates a column whose length does not match the frame.
type ErrLengthMismatch struct {
	Column   string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("column %q has %d rows, frame has %d", e.Column, e.Actual, e.Expected)
}
