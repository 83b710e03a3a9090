// Package minio implements blobstore.BlobStore using the MinIO client,
// for archiving coloring storage snapshots against MinIO or any other
// S3-API-compatible object store (Ceph, SeaweedFS, Garage).
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	store := minioblob.NewStore(client, "my-bucket", "coloring/my-index/")
//	archive := coloring.NewArchive(store)
//
// # Features
//
//   - Works with any S3-compatible storage, not just AWS
//   - Range reads for efficient partial fetches
//   - Air-gap friendly: no AWS SDK dependency required
package minio
