package coloring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func multiplesOf(step, limit int) []Color {
	var out []Color
	for i := 0; i < limit; i += step {
		out = append(out, Color(i))
	}
	return out
}

func storageOf(t *testing.T, sets ...[]Color) *Storage {
	t.Helper()
	s := NewStorage()
	for _, set := range sets {
		s.AddSet(set)
	}
	s.Finalize()
	return s
}

func TestColorSetIntersectionMultiplesOf2And3(t *testing.T) {
	s := storageOf(t, multiplesOf(2, 1000), multiplesOf(3, 1000))
	m := FromView(s.ViewOf(0))
	m.IntersectWith(s.ViewOf(1))
	require.Equal(t, multiplesOf(6, 1000), m.Materialize())
}

func TestColorSetIntersectionBitmapWithSparseArraySwitchesKind(t *testing.T) {
	s := storageOf(t, multiplesOf(3, 10000), colors(3, 4, 5, 3000, 6001, 9999))
	m := FromView(s.ViewOf(0))
	require.True(t, m.IsBitmap())
	m.IntersectWith(s.ViewOf(1))
	require.Equal(t, colors(3, 3000, 9999), m.Materialize())
	require.False(t, m.IsBitmap())
}

func TestColorSetIntersectionIdempotentOnSelf(t *testing.T) {
	s := storageOf(t, colors(4, 1534, 4003, 8903))
	m := FromView(s.ViewOf(0))
	before := m.Materialize()
	m.IntersectWith(s.ViewOf(0))
	require.Equal(t, before, m.Materialize())
}

func TestColorSetUnion(t *testing.T) {
	s := storageOf(t, colors(1, 3, 5), colors(2, 3, 7))
	m := FromView(s.ViewOf(0))
	m.UnionWith(s.ViewOf(1))
	require.Equal(t, colors(1, 2, 3, 5, 7), m.Materialize())
}

func TestColorSetCombineCommutative(t *testing.T) {
	s := storageOf(t, multiplesOf(2, 500), multiplesOf(3, 500), multiplesOf(5, 500))

	order1 := FromView(s.ViewOf(0))
	order1.IntersectWith(s.ViewOf(1))
	order1.IntersectWith(s.ViewOf(2))

	order2 := FromView(s.ViewOf(2))
	order2.IntersectWith(s.ViewOf(1))
	order2.IntersectWith(s.ViewOf(0))

	require.Equal(t, order1.Materialize(), order2.Materialize())
}

func TestColorSetFromVectorMembership(t *testing.T) {
	cs := NewColorSet(colors(4, 1534, 4003, 8903))
	require.Equal(t, 4, cs.Size())
	require.True(t, cs.Contains(1534))
	require.False(t, cs.Contains(1535))
}

func TestNewColorSetPanicsOnUnsortedInput(t *testing.T) {
	require.Panics(t, func() {
		NewColorSet(colors(5, 3, 8))
	})
}

func TestColorSetEmptySet(t *testing.T) {
	cs := NewColorSet(nil)
	require.True(t, cs.Empty())
	require.Equal(t, 0, cs.Size())
	require.False(t, cs.Contains(0))
}
