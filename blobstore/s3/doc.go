// Package s3 implements blobstore.Store on Amazon S3.
//
// Models upload through the SDK's multipart manager and download whole;
// missing keys map to blobstore.ErrNotFound.
package s3
