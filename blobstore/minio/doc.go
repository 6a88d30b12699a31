// Package minio implements blobstore.Store on MinIO and other
// S3-compatible object storage.
package minio
