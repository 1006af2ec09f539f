package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Manager is a handle to a slice of a named dataset.
//
// It is created unprepared: RecordCount reports the requested slice size
// until Prepare has materialized the backing shards, after which it reports
// the count actually available on disk. A prepared Manager is safe for
// concurrent readers.
type Manager struct {
	data Data
	size int64

	mu       sync.RWMutex
	loaded   int64    // records materialized by Prepare; 0 until then
	shards   []string // local paths of the shards backing the slice
	prepared bool
}

// Manager returns a handle to the first size records of the dataset.
// size may be smaller than the dataset's natural size; a size larger than
// the natural size is rejected at Prepare time.
func (d Dataset) Manager(size int64) *Manager {
	return d.Data().Manager(size)
}

// Manager returns a handle to the first size records of an arbitrary
// dataset description. Most callers go through Dataset.Manager; this form
// exists for user-supplied datasets.
func (d Data) Manager(size int64) *Manager {
	return &Manager{
		data: d,
		size: size,
	}
}

// Data returns the static dataset description.
func (m *Manager) Data() Data { return m.data }

// RequestedSize returns the slice cardinality the manager was created with.
func (m *Manager) RequestedSize() int64 { return m.size }

// Dimension returns the vector dimensionality.
func (m *Manager) Dimension() int { return m.data.Dimension }

// Prepared reports whether the backing shards have been materialized.
func (m *Manager) Prepared() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prepared
}

// RecordCount returns the effective record count of the slice: the count
// materialized by Prepare, or the requested size if Prepare has not run.
// The value a filter predicate is derived from must be read through this
// method at derivation time, not captured earlier.
func (m *Manager) RecordCount() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.prepared {
		return m.loaded
	}
	return m.size
}

type prepareOptions struct {
	cacheDir    string
	throttle    *Throttle
	concurrency int
	logger      *slog.Logger
}

// PrepareOption configures a Prepare run.
type PrepareOption func(*prepareOptions)

// WithCacheDir sets the local directory shard files are stored under.
func WithCacheDir(dir string) PrepareOption {
	return func(o *prepareOptions) { o.cacheDir = dir }
}

// WithThrottle bounds the download concurrency and bandwidth.
func WithThrottle(t *Throttle) PrepareOption {
	return func(o *prepareOptions) { o.throttle = t }
}

// WithConcurrency sets the number of shards fetched in parallel.
func WithConcurrency(n int) PrepareOption {
	return func(o *prepareOptions) { o.concurrency = n }
}

// WithLogger sets the logger used to trace the Prepare run.
func WithLogger(l *slog.Logger) PrepareOption {
	return func(o *prepareOptions) { o.logger = l }
}

// Prepare fetches the shard files covering the requested slice from src and
// records the count actually available. Shards already present in the cache
// directory are not fetched again. Prepare is idempotent; concurrent calls
// are serialized by the caller's discretion, not by the manager.
func (m *Manager) Prepare(ctx context.Context, src Source, opts ...PrepareOption) error {
	o := prepareOptions{
		cacheDir:    filepath.Join(os.TempDir(), "vectordb_bench", "dataset"),
		concurrency: 4,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency < 1 {
		o.concurrency = 1
	}

	if m.size <= 0 {
		return fmt.Errorf("dataset %s: requested size %d must be positive", m.data.Name, m.size)
	}
	if m.size > m.data.Size {
		return fmt.Errorf("dataset %s: requested size %d exceeds natural size %d",
			m.data.Name, m.size, m.data.Size)
	}

	needShards := int((m.size + m.data.ShardSize - 1) / m.data.ShardSize)
	paths := make([]string, needShards)
	counts := make([]int64, needShards)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i := 0; i < needShards; i++ {
		i := i
		g.Go(func() error {
			name := m.data.ShardName(i)
			local := filepath.Join(o.cacheDir, filepath.FromSlash(name))

			if _, err := os.Stat(local); err != nil {
				if err := fetchShard(gctx, src, name, local, o.throttle); err != nil {
					return err
				}
				o.logger.Info("shard fetched", "dataset", m.data.Name, "shard", name)
			} else {
				o.logger.Debug("shard cached", "dataset", m.data.Name, "shard", name)
			}

			n, err := countShardRecords(local, m.data.Dimension)
			if err != nil {
				return fmt.Errorf("shard %s: %w", name, err)
			}
			paths[i] = local
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var available int64
	for _, n := range counts {
		available += n
	}
	loaded := m.size
	if available < loaded {
		loaded = available
	}

	m.mu.Lock()
	m.shards = paths
	m.loaded = loaded
	m.prepared = true
	m.mu.Unlock()

	o.logger.Info("dataset prepared",
		"dataset", m.data.Name,
		"requested", m.size,
		"loaded", loaded,
		"shards", needShards,
	)
	return nil
}

// Iterate streams the slice's vectors in ordinal order, invoking fn with the
// zero-based ordinal and the vector until fn returns false or the slice is
// exhausted. The manager must be prepared.
func (m *Manager) Iterate(fn func(ordinal int64, vector []float32) bool) error {
	m.mu.RLock()
	shards, loaded, prepared := m.shards, m.loaded, m.prepared
	m.mu.RUnlock()

	if !prepared {
		return fmt.Errorf("dataset %s: not prepared", m.data.Name)
	}

	var (
		ordinal int64
		stopped bool
	)
	for _, path := range shards {
		if stopped || ordinal >= loaded {
			return nil
		}

		rc, err := openShard(path)
		if err != nil {
			return err
		}
		err = ReadShard(rc, func(vec []float32) bool {
			if ordinal >= loaded {
				return false
			}
			if !fn(ordinal, vec) {
				stopped = true
				return false
			}
			ordinal++
			return true
		})
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// fetchShard downloads one shard into local, going through a temp file so a
// failed download never leaves a truncated shard in the cache.
func fetchShard(ctx context.Context, src Source, name, local string, t *Throttle) error {
	if err := t.Acquire(ctx); err != nil {
		return err
	}
	defer t.Release()

	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(local), ".fetch-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := src.Fetch(ctx, name, tmp); err != nil {
		tmp.Close()
		return err
	}

	info, err := tmp.Stat()
	if err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// Pace the aggregate throughput before admitting the next fetch.
	if err := t.WaitBytes(ctx, info.Size()); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), local)
}

// countShardRecords validates a local shard and returns its record count.
func countShardRecords(path string, wantDim int) (int64, error) {
	rc, err := openShard(path)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	count, dim, err := ReadShardHeader(rc)
	if err != nil {
		return 0, err
	}
	if dim != wantDim {
		return 0, fmt.Errorf("shard dimension %d, want %d", dim, wantDim)
	}
	return int64(count), nil
}
