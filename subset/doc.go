// Package subset provides the external line-delimited value sources that
// membership conditions draw their allowed values from.
//
// A source is read exactly once per condition and fully materialized into
// an in-memory value list before any predicate is evaluated. Local and
// streamed sources transparently decompress gzip, zstd and lz4 input by
// magic-byte sniffing, so compressed barcode and gene lists work without
// configuration.
//
// # Backends
//
//   - Memory: inline values (and tests)
//   - Local: local files
//   - Reader: any io.Reader
//   - s3: objects in Amazon S3 (subpackage)
//   - minio: objects in MinIO or other S3-compatible stores (subpackage)
//
// Read failures are fatal to the filter invocation; a condition naming an
// external list is never silently dropped.
package subset
