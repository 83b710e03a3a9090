// Package s3 implements blobstore.BlobStore against Amazon S3, for
// archiving coloring storage snapshots to a durable, shared backend.
//
//	client := s3.NewFromConfig(cfg)
//	store := s3.NewStore(client, "my-bucket", "coloring/my-index/")
//	archive := coloring.NewArchive(store)
//
// # Features
//
//   - Range reads for efficient partial fetches of a loaded snapshot
//   - Multipart upload for large snapshots via the s3 manager package
//   - Automatic pagination for listing versions
//   - A configurable key prefix for multi-tenant isolation
package s3
