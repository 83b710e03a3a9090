// Package coloring implements a hybrid color-set store for a colored de
// Bruijn graph index.
//
// Every distinct k-mer of the graph is tagged with a color set: the subset
// of reference sequences that contain that k-mer. A reference pan-genome
// indexes millions of distinct color sets whose cardinalities span many
// orders of magnitude, so each set is encoded either as a raw bitmap or as
// a sorted array of integers, whichever is smaller, and all sets of a kind
// share one concatenated buffer.
//
// # Quick Start
//
// Ingest:
//
//	st := coloring.NewStorage()
//	st.AddSet([]coloring.Color{4, 1534, 4003, 8903})
//	st.AddSet(multiplesOf3)
//	st.Finalize()
//
// Query:
//
//	v := st.ViewOf(0)
//	v.Contains(1534) // true
//	v.Materialize()   // []Color{4, 1534, 4003, 8903}
//
// Combine (the pseudoalignment hot path):
//
//	m := coloring.FromView(st.ViewOf(0))
//	m.IntersectWith(st.ViewOf(1))
//	m.IntersectWith(st.ViewOf(2))
//	result := m.Materialize()
//
// # Persistence
//
// Storage.WriteTo/ReadFrom implement the fixed-order binary layout described
// in the package's design notes, prefixed with a format tag so a caller
// polymorphically trying several on-disk coloring formats can tell a
// version mismatch apart from an I/O failure. Archive builds versioned,
// optionally-compressed publication of that blob to local disk, S3, or
// MinIO (via the blobstore package) on top of the same
// Storage.WriteTo/ReadFrom:
//
//	store := blobstore.NewLocalStore("/var/lib/coloring")
//	archive := coloring.NewArchive(store, coloring.WithArchiveCodec(zstdCodec))
//	version, err := archive.Save(ctx, st)
//	loaded, err := archive.Load(ctx)
package coloring
