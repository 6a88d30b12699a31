// Package blobstore abstracts where serialized spline models live.
//
// A Store maps names to immutable model snapshots. Implementations must
// be safe for concurrent use.
//
// # Built-in implementations
//
//   - LocalStore: local filesystem, atomic writes via rename
//   - MemoryStore: in-process map, for tests and ephemeral models
//   - minio.Store: MinIO / S3-compatible object storage
//   - s3.Store: Amazon S3 with parallel multipart uploads
//
// # Wrappers
//
//   - Cached: byte cache with single-flight fetch deduplication
//   - Throttled: rate-limits calls to a shared remote backend
package blobstore
