package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hupe1980/annfilter/subset"
)

// Client is the S3 API surface the source needs.
type Client = manager.DownloadAPIClient

// Source reads a line-delimited value list from an S3 object.
type Source struct {
	client Client
	bucket string
	key    string
}

// New creates a Source for the given object.
func New(client Client, bucket, key string) *Source {
	return &Source{client: client, bucket: bucket, key: key}
}

// NewFromDefaultConfig creates a Source using the default AWS credential
// and region chain.
func NewFromDefaultConfig(ctx context.Context, bucket, key string, optFns ...func(*config.LoadOptions) error) (*Source, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return New(s3.NewFromConfig(cfg), bucket, key), nil
}

// ReadValues downloads the object and splits it into values.
// Compressed objects are decompressed transparently.
func (s *Source) ReadValues(ctx context.Context) ([]string, error) {
	buf := manager.NewWriteAtBuffer(nil)
	downloader := manager.NewDownloader(s.client)

	if _, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	}); err != nil {
		return nil, fmt.Errorf("download s3://%s/%s: %w", s.bucket, s.key, err)
	}

	return subset.ReadAll(bytes.NewReader(buf.Bytes()))
}
