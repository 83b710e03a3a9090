// Package blobstore provides the storage abstraction a coloring.Archive
// publishes and loads versioned Storage snapshots through.
//
// BlobStore is the interface every backend implements. Implementations
// must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, reads served via mmap
//   - s3.Store: Amazon S3, with ranged reads and multipart upload on Put
//   - minio.Store: MinIO and other S3-API-compatible object stores
//
// # Custom Implementations
//
// Implement the BlobStore interface to support another backend:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
