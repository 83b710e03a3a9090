package coloring

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// A finalized Storage's reads are safe for any number of concurrent
// callers with no synchronization, since ViewOf and IterViews only touch
// immutable buffers and a pure rank lookup table.
func TestStorageConcurrentReadsAfterFinalize(t *testing.T) {
	var sets [][]Color
	for i := 0; i < 200; i++ {
		if i%2 == 0 {
			sets = append(sets, multiplesOf(7, i+1))
		} else {
			sets = append(sets, colors(i, i*3+1))
		}
	}
	s := storageOf(t, sets...)

	var g errgroup.Group
	for worker := 0; worker < 16; worker++ {
		g.Go(func() error {
			for i := 0; i < s.Count(); i++ {
				v := s.ViewOf(i)
				_ = v.Materialize()
				_ = v.Size()
			}
			for range s.IterViews() {
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
