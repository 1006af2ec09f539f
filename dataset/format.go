package dataset

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Shard files start with a fixed 12-byte header followed by count*dim
// little-endian float32 values.
const shardMagic uint32 = 0x56444242 // "VDBB"

// WriteShard encodes vectors into w in the shard wire format.
func WriteShard(w io.Writer, dim int, vectors [][]float32) error {
	bw := bufio.NewWriter(w)

	var hdr [12]byte
	binary.LittleEndian.PutUint32(hdr[0:4], shardMagic)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(vectors)))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(dim))
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}

	buf := make([]byte, 4)
	for _, vec := range vectors {
		if len(vec) != dim {
			return fmt.Errorf("vector dimension %d, want %d", len(vec), dim)
		}
		for _, v := range vec {
			binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ReadShardHeader reads and validates the shard header, returning the record
// count and vector dimension.
func ReadShardHeader(r io.Reader) (count, dim int, err error) {
	var hdr [12]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, 0, fmt.Errorf("read shard header: %w", err)
	}
	if m := binary.LittleEndian.Uint32(hdr[0:4]); m != shardMagic {
		return 0, 0, fmt.Errorf("bad shard magic 0x%08x", m)
	}
	count = int(binary.LittleEndian.Uint32(hdr[4:8]))
	dim = int(binary.LittleEndian.Uint32(hdr[8:12]))
	if dim <= 0 {
		return 0, 0, fmt.Errorf("bad shard dimension %d", dim)
	}
	return count, dim, nil
}

// ReadShard streams vectors from r, invoking fn for each record until fn
// returns false or the shard is exhausted.
func ReadShard(r io.Reader, fn func(vector []float32) bool) error {
	count, dim, err := ReadShardHeader(r)
	if err != nil {
		return err
	}

	br := bufio.NewReader(r)
	raw := make([]byte, dim*4)
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(br, raw); err != nil {
			return fmt.Errorf("read record %d: %w", i, err)
		}
		vec := make([]float32, dim)
		for j := range vec {
			vec[j] = math.Float32frombits(binary.LittleEndian.Uint32(raw[j*4:]))
		}
		if !fn(vec) {
			return nil
		}
	}
	return nil
}

// openShard opens a local shard file, transparently decompressing by
// extension (.zst, .lz4; anything else is read as-is).
func openShard(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &zstdShard{f: f, zr: zr}, nil
	case strings.HasSuffix(path, ".lz4"):
		return &lz4Shard{f: f, lr: lz4.NewReader(f)}, nil
	default:
		return f, nil
	}
}

type zstdShard struct {
	f  *os.File
	zr *zstd.Decoder
}

func (s *zstdShard) Read(p []byte) (int, error) { return s.zr.Read(p) }

func (s *zstdShard) Close() error {
	s.zr.Close()
	return s.f.Close()
}

type lz4Shard struct {
	f  *os.File
	lr *lz4.Reader
}

func (s *lz4Shard) Read(p []byte) (int, error) { return s.lr.Read(p) }

func (s *lz4Shard) Close() error { return s.f.Close() }
