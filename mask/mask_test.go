package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/annfilter/dataset"
	"github.com/hupe1980/annfilter/filter"
	"github.com/hupe1980/annfilter/frame"
)

func TestMaskNarrow(t *testing.T) {
	m := New(5)
	assert.Equal(t, 5, m.Cardinality())

	m.Narrow(func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{0, 2, 4}, m.Indices())

	m.Narrow(func(i int) bool { return i > 0 })
	assert.Equal(t, []int{2, 4}, m.Indices())
}

func TestBuildRangeConjunction(t *testing.T) {
	f := frame.New([]string{"cell0", "cell1", "cell2"})
	require.NoError(t, f.SetFloatColumn("n_counts", []float64{5, 50, 500}))

	m, err := Build(f, &filter.Predicates{
		Ranges: []filter.RangeCondition{{Attr: "n_counts", Min: 10, Max: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, m.Indices())
}

func TestBuildRangeInclusiveBounds(t *testing.T) {
	f := frame.New([]string{"a", "b", "c", "d"})
	require.NoError(t, f.SetFloatColumn("v", []float64{9.999, 10, 100, 100.001}))

	m, err := Build(f, &filter.Predicates{
		Ranges: []filter.RangeCondition{{Attr: "v", Min: 10, Max: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, m.Indices())
}

func TestBuildMembership(t *testing.T) {
	f := frame.New([]string{"cell0", "cell1", "cell2"})
	require.NoError(t, f.SetColumn(frame.NewStringColumn("sample", []string{"A", "B", "A"})))

	m, err := Build(f, &filter.Predicates{
		Memberships: []filter.MembershipCondition{{Attr: "sample", Values: []string{"A"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, m.Indices())
}

func TestBuildIndexMembership(t *testing.T) {
	f := frame.New([]string{"cell0", "cell1", "cell2"})

	m, err := Build(f, &filter.Predicates{
		Memberships: []filter.MembershipCondition{{Attr: "index", Values: []string{"cell2", "cell0"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, m.Indices())
}

func TestBuildMissingColumn(t *testing.T) {
	f := frame.New([]string{"cell0"})

	_, err := Build(f, &filter.Predicates{
		Ranges: []filter.RangeCondition{{Attr: "ghost", Min: 0, Max: 1}},
	})
	var mc *ErrMissingColumn
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, "ghost", mc.Attr)
}

func TestApplyKeepsAlignment(t *testing.T) {
	obs := frame.New([]string{"cell0", "cell1", "cell2"})
	require.NoError(t, obs.SetFloatColumn("n_counts", []float64{5, 50, 500}))

	vars := frame.New([]string{"geneA", "geneB", "geneC", "geneD"})
	require.NoError(t, vars.SetFloatColumn("n_cells", []float64{0, 2, 3, 1}))

	x := dataset.NewDense(3, 4, []float64{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	})
	ds, err := dataset.New(obs, vars, x)
	require.NoError(t, err)

	err = Apply(ds, &filter.Resolved{
		Cells: filter.Predicates{Ranges: []filter.RangeCondition{{Attr: "n_counts", Min: 10, Max: 1000}}},
		Genes: filter.Predicates{Ranges: []filter.RangeCondition{{Attr: "n_cells", Min: 1, Max: 100}}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, ds.NumObs())
	assert.Equal(t, 3, ds.NumVar())
	assert.Equal(t, ds.NumObs(), ds.X.Rows())
	assert.Equal(t, ds.NumVar(), ds.X.Cols())
	assert.Equal(t, []string{"cell1", "cell2"}, ds.Obs.Index())
	assert.Equal(t, []string{"geneB", "geneC", "geneD"}, ds.Var.Index())
	assert.Equal(t, 5.0, ds.X.At(0, 0))
	assert.Equal(t, 11.0, ds.X.At(1, 2))
}

func TestApplyEmptyPredicatesNoChange(t *testing.T) {
	obs := frame.New([]string{"cell0", "cell1"})
	vars := frame.New([]string{"geneA"})
	ds, err := dataset.New(obs, vars, dataset.NewDense(2, 1, []float64{1, 2}))
	require.NoError(t, err)

	require.NoError(t, Apply(ds, &filter.Resolved{}))
	assert.Equal(t, 2, ds.NumObs())
	assert.Equal(t, 1, ds.NumVar())
}
