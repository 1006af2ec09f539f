package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Source fetches dataset shard files by name into a local file.
//
// name is the shard key relative to the dataset root (see Data.ShardName);
// implementations must write the complete object into dst or return an error.
type Source interface {
	Fetch(ctx context.Context, name string, dst *os.File) error
}

// LocalSource serves shard files from a local directory tree. It is mainly
// used for tests and for pre-staged datasets on shared storage.
type LocalSource struct {
	root string
}

// NewLocalSource creates a Source rooted at the given directory.
func NewLocalSource(root string) *LocalSource {
	return &LocalSource{root: root}
}

// Fetch copies the named shard file into dst.
func (s *LocalSource) Fetch(ctx context.Context, name string, dst *os.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := os.Open(filepath.Join(s.root, filepath.FromSlash(name)))
	if err != nil {
		return fmt.Errorf("open shard %s: %w", name, err)
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy shard %s: %w", name, err)
	}
	return nil
}
