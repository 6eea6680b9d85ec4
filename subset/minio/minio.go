package minio

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"

	"github.com/hupe1980/annfilter/subset"
)

// Source reads a line-delimited value list from a MinIO (or any
// S3-compatible) object store.
type Source struct {
	client *minio.Client
	bucket string
	object string
}

// New creates a Source for the given object.
func New(client *minio.Client, bucket, object string) *Source {
	return &Source{client: client, bucket: bucket, object: object}
}

// ReadValues fetches the object and splits it into values.
// Compressed objects are decompressed transparently.
func (s *Source) ReadValues(ctx context.Context) ([]string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", s.bucket, s.object, err)
	}
	defer func() { _ = obj.Close() }()

	values, err := subset.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read object %s/%s: %w", s.bucket, s.object, err)
	}
	return values, nil
}
