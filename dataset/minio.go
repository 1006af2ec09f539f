package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/minio/minio-go/v7"
)

// MinIOSource fetches dataset shards from MinIO or any S3-compatible store
// reachable through the minio client.
type MinIOSource struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinIOSource creates a Source backed by the given minio client.
// prefix is prepended to all shard keys.
func NewMinIOSource(client *minio.Client, bucket, prefix string) *MinIOSource {
	return &MinIOSource{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Fetch downloads the named shard into dst.
func (s *MinIOSource) Fetch(ctx context.Context, name string, dst *os.File) error {
	key := path.Join(s.prefix, name)

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("get %s/%s: %w", s.bucket, key, err)
	}
	defer obj.Close()

	if _, err := io.Copy(dst, obj); err != nil {
		return fmt.Errorf("download %s/%s: %w", s.bucket, key, err)
	}
	return nil
}
