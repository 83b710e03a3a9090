// Package blobstore abstracts the archive layer's durable storage target,
// so a coloring.Archive can publish and load versioned storage blobs
// against the local filesystem, S3, or MinIO through the same interface.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// errors.Is(err, ErrNotFound). The default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// BlobStore is the storage abstraction an Archive publishes coloring
// snapshots through.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Put writes a blob atomically, replacing any existing blob of the
	// same name.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a blob that does not exist is not
	// an error.
	Delete(ctx context.Context, name string) error
	// List returns the names of all blobs whose name starts with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a stored snapshot.
type Blob interface {
	// ReadAt reads len(p) bytes starting at off, the same contract as
	// io.ReaderAt but context-aware so cloud-backed implementations can
	// honor cancellation on a range read.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Mappable is an optional interface for Blobs that support zero-copy
// memory mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice. The slice is valid until
	// the Blob is closed.
	Bytes() ([]byte, error)
}
