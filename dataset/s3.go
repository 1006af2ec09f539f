package dataset

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Source fetches dataset shards from an S3 bucket using the SDK's
// concurrent range downloader.
type S3Source struct {
	downloader *manager.Downloader
	bucket     string
	prefix     string
}

// NewS3Source creates an S3Source from the ambient AWS configuration.
// prefix is prepended to all shard keys (e.g. "datasets/").
func NewS3Source(ctx context.Context, bucket, prefix string) (*S3Source, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Source{
		downloader: manager.NewDownloader(client),
		bucket:     bucket,
		prefix:     prefix,
	}, nil
}

// NewS3SourceFromClient creates an S3Source backed by an existing client,
// e.g. one configured for a custom endpoint.
func NewS3SourceFromClient(client *s3.Client, bucket, prefix string) *S3Source {
	return &S3Source{
		downloader: manager.NewDownloader(client),
		bucket:     bucket,
		prefix:     prefix,
	}
}

// Fetch downloads the named shard into dst.
func (s *S3Source) Fetch(ctx context.Context, name string, dst *os.File) error {
	key := path.Join(s.prefix, name)
	_, err := s.downloader.Download(ctx, dst, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("download s3://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}
