package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/annfilter/frame"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFrameFile(t *testing.T) {
	path := writeFile(t, "obs.tsv",
		"\tn_umi\tscore\tsample\tdoublet\n"+
			"cell0\t100\t0.5\tA\ttrue\n"+
			"cell1\t200\t1.25\tB\tfalse\n")

	fr, err := LoadFrameFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"cell0", "cell1"}, fr.Index())

	tests := []struct {
		name string
		kind frame.Kind
	}{
		{name: "n_umi", kind: frame.KindInt},
		{name: "score", kind: frame.KindFloat},
		{name: "sample", kind: frame.KindString},
		{name: "doublet", kind: frame.KindString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, ok := fr.Column(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.kind, col.Kind())
		})
	}

	// Boolean-domain detection happens on the values, not the syntax.
	doublet, _ := fr.Column("doublet")
	assert.True(t, doublet.IsBoolDomain())
}

func TestLoadFrameFileRowWidthMismatch(t *testing.T) {
	path := writeFile(t, "obs.tsv", "\ta\tb\ncell0\t1\n")

	_, err := LoadFrameFile(path)
	assert.Error(t, err)
}

func TestLoadMatrixFileCoordinate(t *testing.T) {
	path := writeFile(t, "matrix.mtx",
		"%%MatrixMarket matrix coordinate real general\n"+
			"% comment\n"+
			"2 3 3\n"+
			"1 1 5\n"+
			"2 3 7\n"+
			"1 2 1.5\n")

	m, err := LoadMatrixFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 5.0, m.At(0, 0))
	assert.Equal(t, 1.5, m.At(0, 1))
	assert.Equal(t, 7.0, m.At(1, 2))
	assert.Equal(t, 0.0, m.At(1, 0))
}

func TestLoadMatrixFileArray(t *testing.T) {
	// Array entries are column-major: (1,1) (2,1) (1,2) (2,2).
	path := writeFile(t, "matrix.mtx",
		"%%MatrixMarket matrix array real general\n"+
			"2 2\n"+
			"1\n2\n3\n4\n")

	m, err := LoadMatrixFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 2.0, m.At(1, 0))
	assert.Equal(t, 3.0, m.At(0, 1))
	assert.Equal(t, 4.0, m.At(1, 1))
}

func TestLoadMatrixFileRejectsGarbage(t *testing.T) {
	path := writeFile(t, "matrix.mtx", "not a matrix\n")

	_, err := LoadMatrixFile(path)
	assert.Error(t, err)
}

func TestFrameRoundTrip(t *testing.T) {
	src := writeFile(t, "var.tsv",
		"\tn_counts\tsymbol\n"+
			"g0\t10\tMT-CO1\n"+
			"g1\t20\tACTB\n")

	fr, err := LoadFrameFile(src)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.tsv")
	require.NoError(t, WriteFrameFile(out, fr))

	again, err := LoadFrameFile(out)
	require.NoError(t, err)

	assert.Equal(t, fr.Index(), again.Index())
	col, ok := again.Column("symbol")
	require.True(t, ok)
	assert.Equal(t, "MT-CO1", col.StringAt(0))
}

func TestMatrixRoundTrip(t *testing.T) {
	src := writeFile(t, "matrix.mtx",
		"%%MatrixMarket matrix coordinate real general\n"+
			"2 2 2\n"+
			"1 2 3.5\n"+
			"2 1 4\n")

	m, err := LoadMatrixFile(src)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.mtx")
	require.NoError(t, WriteMatrixFile(out, m))

	again, err := LoadMatrixFile(out)
	require.NoError(t, err)

	assert.Equal(t, 3.5, again.At(0, 1))
	assert.Equal(t, 4.0, again.At(1, 0))
	assert.Equal(t, 0.0, again.At(0, 0))
}

func TestLoadSpecFile(t *testing.T) {
	path := writeFile(t, "spec.yaml", `
ranges:
  - name: n_genes
    min: 200
    max: 5000
categories:
  - name: sample
    values: [healthy, control]
subsets:
  - name: index
    file: barcodes.txt
`)

	spec, err := LoadSpecFile(path)
	require.NoError(t, err)

	require.Len(t, spec.Ranges, 1)
	assert.Equal(t, "n_genes", spec.Ranges[0].Name)
	assert.Equal(t, 200.0, spec.Ranges[0].Min)

	require.Len(t, spec.Categories, 1)
	assert.Equal(t, []string{"healthy", "control"}, spec.Categories[0].Values)

	require.Len(t, spec.Subsets, 1)
	assert.NotNil(t, spec.Subsets[0].Source)
}

func TestLoadSpecFileValuesAndFileConflict(t *testing.T) {
	path := writeFile(t, "spec.yaml", `
categories:
  - name: sample
    values: [a]
    file: list.txt
`)

	_, err := LoadSpecFile(path)
	assert.Error(t, err)
}
