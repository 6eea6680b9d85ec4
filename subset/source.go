package subset

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Source supplies the allowed values of a membership condition as a
// line-delimited list. Sources are read once per condition and fully
// materialized before predicate evaluation; a read failure is fatal to
// the filter invocation.
type Source interface {
	// ReadValues reads and returns all values.
	ReadValues(ctx context.Context) ([]string, error)
}

// Memory is a Source over an in-memory value list, for inline condition
// values and tests.
type Memory struct {
	Values []string
}

// ReadValues returns a copy of the values.
func (m Memory) ReadValues(_ context.Context) ([]string, error) {
	out := make([]string, len(m.Values))
	copy(out, m.Values)
	return out, nil
}

// Reader is a Source over an arbitrary reader. The stream may be gzip,
// zstd or lz4 compressed; compression is detected transparently.
type Reader struct {
	R io.Reader
}

// ReadValues reads the stream to EOF and splits it into values.
func (r Reader) ReadValues(_ context.Context) ([]string, error) {
	return ReadAll(r.R)
}

// ReadAll decompresses (if needed) and reads a line-delimited value list
// from r. Trailing whitespace is stripped before splitting, and each
// value loses a trailing carriage return, so CRLF lists work unchanged.
func ReadAll(r io.Reader) ([]string, error) {
	dr, err := decompress(r)
	if err != nil {
		return nil, fmt.Errorf("detect compression: %w", err)
	}

	data, err := io.ReadAll(dr)
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}

	return splitValues(string(data)), nil
}

func splitValues(data string) []string {
	data = strings.TrimRight(data, " \t\r\n")
	if data == "" {
		return nil
	}
	values := strings.Split(data, "\n")
	for i, v := range values {
		values[i] = strings.TrimSuffix(v, "\r")
	}
	return values
}
