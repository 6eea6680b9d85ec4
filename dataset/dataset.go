package dataset

import (
	"fmt"

	"github.com/hupe1980/annfilter/frame"
)

// Dataset is an annotated expression dataset: a cell table (Obs), a gene
// table (Var) and an expression matrix X whose rows align with Obs and
// whose columns align with Var.
//
// The alignment invariant holds at construction and after every subset:
// X.Rows() == Obs.Len() and X.Cols() == Var.Len().
type Dataset struct {
	Obs *frame.Frame
	Var *frame.Frame
	X   Matrix
}

// New creates a Dataset and verifies the alignment invariant.
func New(obs, vars *frame.Frame, x Matrix) (*Dataset, error) {
	if x.Rows() != obs.Len() {
		return nil, &ErrMisaligned{Axis: "obs", Table: obs.Len(), Matrix: x.Rows()}
	}
	if x.Cols() != vars.Len() {
		return nil, &ErrMisaligned{Axis: "var", Table: vars.Len(), Matrix: x.Cols()}
	}
	return &Dataset{Obs: obs, Var: vars, X: x}, nil
}

// NumObs returns the number of cells.
func (d *Dataset) NumObs() int { return d.Obs.Len() }

// NumVar returns the number of genes.
func (d *Dataset) NumVar() int { return d.Var.Len() }

// SubsetObs narrows the dataset in place to the cells in keep,
// preserving the given order. The matrix rows shrink with the table.
func (d *Dataset) SubsetObs(keep []int) {
	d.Obs.Subset(keep)
	d.X = d.X.SubsetRows(keep)
}

// SubsetVar narrows the dataset in place to the genes in keep,
// preserving the given order. The matrix columns shrink with the table.
func (d *Dataset) SubsetVar(keep []int) {
	d.Var.Subset(keep)
	d.X = d.X.SubsetCols(keep)
}

// ErrMisaligned indicates a table/matrix row-count mismatch on one axis.
type ErrMisaligned struct {
	Axis   string
	Table  int
	Matrix int
}

func (e *ErrMisaligned) Error() string {
	return fmt.Sprintf("%s table has %d rows, matrix has %d on that axis", e.Axis, e.Table, e.Matrix)
}
