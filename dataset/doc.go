// Package dataset provides access to the named vector collections the
// benchmark cases run against.
//
// A Dataset names a published embedding collection (SIFT, GIST, Cohere,
// OpenAI, LAION) at a fixed natural size. A Manager is a handle to a slice
// of one of them: it records the requested cardinality, fetches the backing
// shard files from a Source (S3, MinIO or a local directory) on Prepare,
// and exposes the effective record count used for filter derivation.
//
// Shard files are little-endian float32 records behind a small header and
// may be zstd- or lz4-compressed, chosen by file extension.
package dataset
