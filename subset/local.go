package subset

import (
	"context"
	"fmt"
	"os"
)

// Local is a Source reading a line-delimited list from the local file
// system. Compressed files (.gz, .zst, .lz4) are detected by content,
// not extension.
type Local struct {
	Path string
}

// ReadValues opens and reads the file.
func (l Local) ReadValues(_ context.Context) ([]string, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open subset list: %w", err)
	}
	defer func() { _ = f.Close() }()

	values, err := ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read subset list %s: %w", l.Path, err)
	}
	return values, nil
}
