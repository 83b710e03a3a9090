package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalBlobStoreLifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	blobName := "storage-000001.bin"
	data := []byte("hello world, this is a test coloring snapshot")

	require.NoError(t, store.Put(ctx, blobName, data))

	_, err := os.Stat(filepath.Join(tmpDir, blobName))
	require.NoError(t, err)

	blob, err := store.Open(ctx, blobName)
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 5)
	n, err := blob.ReadAt(ctx, buf, 6) // "world"
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "world", string(buf))

	blobName2 := "storage-000002.bin"
	require.NoError(t, store.Put(ctx, blobName2, []byte("second snapshot")))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	sort.Strings(names)
	require.Equal(t, []string{blobName, blobName2}, names)

	require.NoError(t, store.Delete(ctx, blobName))

	namesAfter, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{blobName2}, namesAfter)

	_, err = store.Open(ctx, blobName)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalBlobStorePutOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a.bin", []byte("first")))
	require.NoError(t, store.Put(ctx, "a.bin", []byte("second, longer")))

	blob, err := store.Open(ctx, "a.bin")
	require.NoError(t, err)
	defer blob.Close()

	buf := make([]byte, blob.Size())
	_, err = blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	require.Equal(t, "second, longer", string(buf))
}

func TestLocalBlobStoreDeleteMissingIsNotError(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	require.NoError(t, store.Delete(context.Background(), "does-not-exist.bin"))
}
