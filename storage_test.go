package coloring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorageRoundTripIngest(t *testing.T) {
	sets := [][]Color{
		colors(4, 1534, 4003, 8903),
		multiplesOf(3, 1000),
		nil,
		colors(0),
		colors(100000),
	}
	s := NewStorage()
	for _, set := range sets {
		s.AddSet(set)
	}
	s.Finalize()

	require.Equal(t, len(sets), s.Count())
	for i, set := range sets {
		got := s.ViewOf(i).Materialize()
		if set == nil {
			require.Empty(t, got)
			continue
		}
		require.Equal(t, set, got)
	}
}

func TestStorageConcreteScenario1(t *testing.T) {
	s := storageOf(t, colors(4, 1534, 4003, 8903))
	v := s.ViewOf(0)
	require.False(t, v.IsBitmap())
	require.Equal(t, 4, v.Size())
	require.True(t, v.Contains(1534))
	require.False(t, v.Contains(1535))
}

func TestStorageConcreteScenario2(t *testing.T) {
	s := storageOf(t, multiplesOf(3, 1000))
	v := s.ViewOf(0)
	require.True(t, v.IsBitmap())
	require.Equal(t, 334, v.Size())
	require.True(t, v.Contains(9))
	require.False(t, v.Contains(10))
}

func TestStorageEmptySetView(t *testing.T) {
	s := storageOf(t, nil)
	v := s.ViewOf(0)
	require.True(t, v.Empty())
	require.Equal(t, 0, v.Size())
	require.False(t, v.Contains(0))
}

func TestStorageSentinelTerminatorOnLastSet(t *testing.T) {
	s := NewStorage()
	for i := 0; i < 1000; i++ {
		s.AddSet(colors(i))
	}
	s.Finalize()

	v := s.ViewOf(999)
	require.Equal(t, 1, v.Size())
	require.True(t, v.Contains(999))
}

func TestStorageClassificationMatchesViewIsBitmap(t *testing.T) {
	s := storageOf(t, multiplesOf(3, 1000), colors(4, 1534, 4003, 8903))
	for i := 0; i < s.Count(); i++ {
		v := s.ViewOf(i)
		decoded := v.Materialize()
		if len(decoded) == 0 {
			continue
		}
		require.Equal(t, classify(decoded) == encodingBitmap, v.IsBitmap())
	}
}

func TestStorageAddSetAfterFinalizePanics(t *testing.T) {
	s := storageOf(t, colors(1, 2, 3))
	require.Panics(t, func() {
		s.AddSet(colors(4, 5))
	})
}

func TestStorageViewOfBeforeFinalizePanics(t *testing.T) {
	s := NewStorage()
	s.AddSet(colors(1, 2, 3))
	require.Panics(t, func() {
		s.ViewOf(0)
	})
}

func TestStorageViewOfOutOfRangePanics(t *testing.T) {
	s := storageOf(t, colors(1, 2, 3))
	require.Panics(t, func() {
		s.ViewOf(5)
	})
}

func TestStorageAddSetUnsortedPanics(t *testing.T) {
	s := NewStorage()
	require.Panics(t, func() {
		s.AddSet(colors(3, 1, 2))
	})
}

func TestStorageIterViews(t *testing.T) {
	s := storageOf(t, colors(1, 2), colors(3, 4), colors(5, 6))
	var gathered [][]Color
	for v := range s.IterViews() {
		gathered = append(gathered, v.Materialize())
	}
	require.Equal(t, [][]Color{{1, 2}, {3, 4}, {5, 6}}, gathered)
}

func TestStorageSpaceBreakdownHasAllComponents(t *testing.T) {
	s := storageOf(t, multiplesOf(3, 1000), colors(4, 1534, 4003, 8903))
	breakdown := s.SpaceBreakdown()
	for _, key := range []string{
		"bitmaps-concat", "bitmaps-starts", "arrays-concat",
		"arrays-starts", "is-bitmap-marks", "is-bitmap-marks-rank-support",
	} {
		_, ok := breakdown[key]
		require.True(t, ok, "missing key %s", key)
	}
}
