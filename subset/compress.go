package subset

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Magic prefixes of the supported compression formats.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// decompress sniffs the stream's magic bytes and wraps r in the matching
// decompressor. Unrecognized streams pass through unchanged.
func decompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(magic, magicGzip):
		return gzip.NewReader(br)
	case bytes.HasPrefix(magic, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case bytes.HasPrefix(magic, magicLZ4):
		return lz4.NewReader(br), nil
	default:
		return br, nil
	}
}
