package filter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/annfilter/catalog"
	"github.com/hupe1980/annfilter/diag"
	"github.com/hupe1980/annfilter/subset"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Cells: catalog.Attributes{
			Numerical:   []string{"n_genes", "n_counts", "pct_counts_mito*"},
			Categorical: []string{"index", "sample"},
			Boolean:     []string{"doublet"},
		},
		Genes: catalog.Attributes{
			Numerical:   []string{"n_cells", "n_counts", "mean_counts"},
			Categorical: []string{"index"},
			Boolean:     []string{"mito"},
		},
	}
}

func TestCompileRangeResolution(t *testing.T) {
	sink := &diag.Collector{}

	resolved, request, err := Compile(context.Background(), testCatalog(), Spec{
		Ranges: []RangeSpec{
			{Name: "n_genes", Min: 200, Max: 5000},
			{Name: "mean_counts", Min: 0.5, Max: 10},
			{Name: "g:n_counts", Min: 1, Max: 1e6},
		},
	}, sink)
	require.NoError(t, err)

	assert.Equal(t, []RangeCondition{{Attr: "n_genes", Min: 200, Max: 5000}}, resolved.Cells.Ranges)
	assert.Equal(t, []RangeCondition{
		{Attr: "mean_counts", Min: 0.5, Max: 10},
		{Attr: "n_counts", Min: 1, Max: 1e6},
	}, resolved.Genes.Ranges)
	assert.True(t, request.Empty())
	assert.Empty(t, sink.Records)
}

func TestCompileAmbiguousDropped(t *testing.T) {
	sink := &diag.Collector{}

	resolved, _, err := Compile(context.Background(), testCatalog(), Spec{
		Ranges:     []RangeSpec{{Name: "n_counts", Min: 10, Max: 100}},
		Categories: []CategorySpec{{Name: "index", Values: []string{"cell0"}}},
	}, sink)
	require.NoError(t, err)

	assert.True(t, resolved.Cells.Empty())
	assert.True(t, resolved.Genes.Empty())
	require.Len(t, sink.Records, 2)
	assert.Equal(t, diag.CodeAmbiguousAttribute, sink.Records[0].Code)
	assert.Equal(t, diag.CodeAmbiguousAttribute, sink.Records[1].Code)
}

func TestCompileUnknownDropped(t *testing.T) {
	sink := &diag.Collector{}

	resolved, request, err := Compile(context.Background(), testCatalog(), Spec{
		Ranges:     []RangeSpec{{Name: "nonsense", Min: 0, Max: 1}},
		Categories: []CategorySpec{{Name: "missing", Values: []string{"x"}}},
	}, sink)
	require.NoError(t, err)

	assert.True(t, resolved.Cells.Empty())
	assert.True(t, resolved.Genes.Empty())
	assert.True(t, request.Empty())
	require.Len(t, sink.Records, 2)
	assert.True(t, sink.Has(diag.CodeUnknownAttribute))
}

func TestCompilePercentTopRescaling(t *testing.T) {
	sink := &diag.Collector{}

	resolved, request, err := Compile(context.Background(), testCatalog(), Spec{
		Ranges: []RangeSpec{{Name: "pct_counts_in_top_50_genes", Min: 0.1, Max: 0.9}},
	}, sink)
	require.NoError(t, err)

	require.Len(t, resolved.Cells.Ranges, 1)
	cond := resolved.Cells.Ranges[0]
	assert.Equal(t, "pct_counts_in_top_50_genes", cond.Attr)
	assert.InDelta(t, 10, cond.Min, 1e-9)
	assert.InDelta(t, 90, cond.Max, 1e-9)
	assert.Equal(t, []int{50}, request.PercentTop)
	assert.Empty(t, request.QCVars)
}

func TestCompileQCVarRescaling(t *testing.T) {
	sink := &diag.Collector{}

	resolved, request, err := Compile(context.Background(), testCatalog(), Spec{
		Ranges: []RangeSpec{{Name: "pct_counts_mito", Min: 0, Max: 0.2}},
	}, sink)
	require.NoError(t, err)

	require.Len(t, resolved.Cells.Ranges, 1)
	cond := resolved.Cells.Ranges[0]
	assert.Equal(t, "pct_counts_mito", cond.Attr)
	assert.InDelta(t, 0, cond.Min, 1e-9)
	assert.InDelta(t, 20, cond.Max, 1e-9)
	assert.Equal(t, []string{"mito"}, request.QCVars)
}

func TestCompileExistingPctColumnStillRescales(t *testing.T) {
	cat := testCatalog()
	cat.Cells.Numerical = append(cat.Cells.Numerical, "pct_counts_mito")
	sink := &diag.Collector{}

	resolved, request, err := Compile(context.Background(), cat, Spec{
		Ranges: []RangeSpec{{Name: "pct_counts_mito", Min: 0, Max: 0.2}},
	}, sink)
	require.NoError(t, err)

	// The column exists, so no synthesis is requested, but the bounds of a
	// pattern-shaped name are still percentages.
	assert.True(t, request.Empty())
	require.Len(t, resolved.Cells.Ranges, 1)
	assert.InDelta(t, 20, resolved.Cells.Ranges[0].Max, 1e-9)
}

func TestCompileRequestDedupAndOrder(t *testing.T) {
	sink := &diag.Collector{}

	_, request, err := Compile(context.Background(), testCatalog(), Spec{
		Ranges: []RangeSpec{
			{Name: "pct_counts_in_top_100_genes", Min: 0, Max: 1},
			{Name: "pct_counts_in_top_50_genes", Min: 0, Max: 1},
			{Name: "pct_counts_in_top_100_genes", Min: 0.2, Max: 0.8},
			{Name: "pct_counts_ribo", Min: 0, Max: 1},
			{Name: "pct_counts_ribo", Min: 0, Max: 0.5},
		},
	}, sink)
	require.NoError(t, err)

	assert.Equal(t, []int{50, 100}, request.PercentTop)
	assert.Equal(t, []string{"ribo"}, request.QCVars)
}

func TestCompileMembershipSource(t *testing.T) {
	sink := &diag.Collector{}

	resolved, _, err := Compile(context.Background(), testCatalog(), Spec{
		Subsets: []CategorySpec{{Name: "sample", Source: subset.Memory{Values: []string{"A", "B"}}}},
	}, sink)
	require.NoError(t, err)

	require.Len(t, resolved.Cells.Memberships, 1)
	assert.Equal(t, MembershipCondition{Attr: "sample", Values: []string{"A", "B"}}, resolved.Cells.Memberships[0])
}

type failingSource struct{ err error }

func (f failingSource) ReadValues(context.Context) ([]string, error) { return nil, f.err }

func TestCompileSourceErrorIsFatal(t *testing.T) {
	sink := &diag.Collector{}
	cause := errors.New("connection reset")

	_, _, err := Compile(context.Background(), testCatalog(), Spec{
		Categories: []CategorySpec{{Name: "sample", Source: failingSource{err: cause}}},
	}, sink)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}
