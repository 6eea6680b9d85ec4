package catalog

import (
	"slices"

	"github.com/hupe1980/annfilter/dataset"
	"github.com/hupe1980/annfilter/frame"
)

// Table identifies one of the two annotation tables.
type Table uint8

const (
	// TableNone means no table (unqualified, unresolved).
	TableNone Table = iota
	// TableCells is the cell (obs) table.
	TableCells
	// TableGenes is the gene (var) table.
	TableGenes
)

// String returns the table tag used in qualified attribute names.
func (t Table) String() string {
	switch t {
	case TableCells:
		return "c"
	case TableGenes:
		return "g"
	default:
		return ""
	}
}

// Class identifies the classification set an attribute belongs to.
type Class uint8

const (
	// ClassNumerical covers integer and float attributes.
	ClassNumerical Class = iota
	// ClassCategorical covers string attributes and the index pseudo-attribute.
	ClassCategorical
	// ClassBoolean covers boolean attributes.
	ClassBoolean
)

// String returns the listing label of the class.
func (c Class) String() string {
	switch c {
	case ClassNumerical:
		return "numerical"
	case ClassCategorical:
		return "categorical"
	case ClassBoolean:
		return "bool"
	default:
		return "unknown"
	}
}

// NeedsComputeSuffix marks a synthetic attribute whose backing column does
// not exist yet and must be created by metric synthesis before use.
const NeedsComputeSuffix = "*"

// IndexAttr is the pseudo-attribute referring to row identity.
const IndexAttr = "index"

// Attributes holds one table's attribute names per classification set,
// in discovery order.
type Attributes struct {
	Numerical   []string
	Categorical []string
	Boolean     []string
}

// Class returns the names of the given classification set.
func (a *Attributes) Class(c Class) []string {
	switch c {
	case ClassNumerical:
		return a.Numerical
	case ClassCategorical:
		return a.Categorical
	case ClassBoolean:
		return a.Boolean
	default:
		return nil
	}
}

// Contains reports whether name is in the given classification set.
func (a *Attributes) Contains(name string, c Class) bool {
	return slices.Contains(a.Class(c), name)
}

func (a *Attributes) add(c Class, name string) {
	if a.Contains(name, c) {
		return
	}
	switch c {
	case ClassNumerical:
		a.Numerical = append(a.Numerical, name)
	case ClassCategorical:
		a.Categorical = append(a.Categorical, name)
	case ClassBoolean:
		a.Boolean = append(a.Boolean, name)
	}
}

// Catalog is the discovered attribute catalog of both tables.
type Catalog struct {
	Cells Attributes
	Genes Attributes
}

// Attributes returns the attribute sets of the given table.
func (c *Catalog) Attributes(t Table) *Attributes {
	if t == TableGenes {
		return &c.Genes
	}
	return &c.Cells
}

// Synthetic numerical attributes guaranteed to exist after base metric
// preprocessing (qc.EnsureBaseMetrics).
var (
	syntheticCellNumerical = []string{"n_genes", "n_counts"}
	syntheticGeneNumerical = []string{"n_cells", "n_counts", "mean_counts", "pct_dropout_by_counts"}
)

// Discover scans both tables and builds the attribute catalog.
//
// Column kinds map onto classification sets: integer and float kinds are
// numerical; string kinds are categorical (and additionally boolean when
// the column's value domain is boolean); boolean kinds are boolean. The
// categorical set of each table is seeded with the index pseudo-attribute.
//
// For every boolean gene attribute, a synthetic pct_counts_<flag> cell
// attribute is registered; when no cell column of that name exists yet,
// the name carries the needs-compute suffix to signal that metric
// synthesis must materialize it first.
//
// Discover is pure: it reads the dataset and never mutates it, so calling
// it twice on an unmodified dataset yields an identical catalog.
func Discover(ds *dataset.Dataset) *Catalog {
	cat := &Catalog{}
	cat.Cells.add(ClassCategorical, IndexAttr)
	cat.Genes.add(ClassCategorical, IndexAttr)

	classify(&cat.Cells, ds.Obs)
	classify(&cat.Genes, ds.Var)

	for _, name := range syntheticCellNumerical {
		cat.Cells.add(ClassNumerical, name)
	}

	for _, flag := range cat.Genes.Boolean {
		name := "pct_counts_" + flag
		if !ds.Obs.HasColumn(name) {
			name += NeedsComputeSuffix
		}
		cat.Cells.add(ClassNumerical, name)
	}

	for _, name := range syntheticGeneNumerical {
		cat.Genes.add(ClassNumerical, name)
	}

	return cat
}

func classify(attrs *Attributes, f *frame.Frame) {
	for _, col := range f.Columns() {
		switch col.Kind() {
		case frame.KindInt, frame.KindFloat:
			attrs.add(ClassNumerical, col.Name())
		case frame.KindString:
			if col.IsBoolDomain() {
				attrs.add(ClassBoolean, col.Name())
			}
			attrs.add(ClassCategorical, col.Name())
		case frame.KindBool:
			attrs.add(ClassBoolean, col.Name())
		}
	}
}
