package subset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReadValues(t *testing.T) {
	src := Memory{Values: []string{"AAACCTG", "AAACGGG"}}

	values, err := src.ReadValues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"AAACCTG", "AAACGGG"}, values)

	// Mutating the result must not affect the source.
	values[0] = "changed"
	again, err := src.ReadValues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AAACCTG", again[0])
}

func TestReaderSplitting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Plain", "a\nb\nc\n", []string{"a", "b", "c"}},
		{"NoTrailingNewline", "a\nb", []string{"a", "b"}},
		{"TrailingWhitespace", "a\nb\n\n  \n", []string{"a", "b"}},
		{"CRLF", "a\r\nb\r\n", []string{"a", "b"}},
		{"InnerEmptyLine", "a\n\nb\n", []string{"a", "", "b"}},
		{"Empty", "", nil},
		{"OnlyWhitespace", "\n\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Reader{R: strings.NewReader(tt.input)}.ReadValues(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, values)
		})
	}
}

func TestReadAllCompressed(t *testing.T) {
	const raw = "geneA\ngeneB\ngeneC\n"
	expected := []string{"geneA", "geneB", "geneC"}

	compressors := map[string]func(t *testing.T) []byte{
		"Gzip": func(t *testing.T) []byte {
			var buf bytes.Buffer
			zw := gzip.NewWriter(&buf)
			_, err := zw.Write([]byte(raw))
			require.NoError(t, err)
			require.NoError(t, zw.Close())
			return buf.Bytes()
		},
		"Zstd": func(t *testing.T) []byte {
			var buf bytes.Buffer
			zw, err := zstd.NewWriter(&buf)
			require.NoError(t, err)
			_, err = zw.Write([]byte(raw))
			require.NoError(t, err)
			require.NoError(t, zw.Close())
			return buf.Bytes()
		},
		"LZ4": func(t *testing.T) []byte {
			var buf bytes.Buffer
			zw := lz4.NewWriter(&buf)
			_, err := zw.Write([]byte(raw))
			require.NoError(t, err)
			require.NoError(t, zw.Close())
			return buf.Bytes()
		},
	}

	for name, compress := range compressors {
		t.Run(name, func(t *testing.T) {
			values, err := ReadAll(bytes.NewReader(compress(t)))
			require.NoError(t, err)
			assert.Equal(t, expected, values)
		})
	}
}

func TestLocalReadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barcodes.txt")
	require.NoError(t, os.WriteFile(path, []byte("AAAC\nGGGT\n"), 0o600))

	values, err := Local{Path: path}.ReadValues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAC", "GGGT"}, values)
}

func TestLocalMissingFile(t *testing.T) {
	_, err := Local{Path: filepath.Join(t.TempDir(), "nope.txt")}.ReadValues(context.Background())
	assert.Error(t, err)
}
