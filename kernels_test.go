package coloring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tmaklin/themisto/internal/bitpack"
)

func bitmapOf(length int, members ...int) *bitpack.BitVector {
	bv := bitpack.NewBitVector(length)
	for _, m := range members {
		bv.Set(m, true)
	}
	return bv
}

func arrayOf(values ...uint64) *bitpack.IntVector {
	var b bitpack.IntBuilder
	for _, v := range values {
		b.Append(v)
	}
	return b.Freeze()
}

func TestIntersectBitmapBitmap(t *testing.T) {
	a := bitmapOf(10, 1, 3, 5, 7, 9)
	b := bitmapOf(8, 1, 2, 3, 7)
	newLen := intersectBitmapBitmap(a, 10, b, 0, 8)
	require.Equal(t, 8, newLen)
	var got []int
	for i := 0; i < newLen; i++ {
		if a.Get(i) {
			got = append(got, i)
		}
	}
	require.Equal(t, []int{1, 3, 7}, got)
}

func TestIntersectArrayArray(t *testing.T) {
	a := arrayOf(1, 3, 5, 7, 9)
	b := arrayOf(2, 3, 5, 8, 9, 10)
	newLen := intersectArrayArray(a, 5, b, 0, 6)
	require.Equal(t, 3, newLen)
	require.Equal(t, []uint64{3, 5, 9}, decodeInts(a, newLen))
}

func TestIntersectArrayBitmap(t *testing.T) {
	a := arrayOf(1, 3, 5, 7, 20)
	b := bitmapOf(10, 1, 5, 7)
	newLen := intersectArrayBitmap(a, 5, b, 0, 10)
	require.Equal(t, 3, newLen)
	require.Equal(t, []uint64{1, 5, 7}, decodeInts(a, newLen))
}

func TestIntersectBitmapArray(t *testing.T) {
	a := bitmapOf(30, 1, 5, 7, 20)
	b := arrayOf(1, 7, 25)
	newLen := intersectBitmapArray(a, 30, b, 0, 3)
	require.Equal(t, 8, newLen) // max kept is 7
	var got []int
	for i := 0; i < newLen; i++ {
		if a.Get(i) {
			got = append(got, i)
		}
	}
	require.Equal(t, []int{1, 7}, got)
}

func TestUnionBitmapBitmap(t *testing.T) {
	a := bitmapOf(12, 1, 3)
	b := bitmapOf(8, 3, 5, 7)
	newLen := unionBitmapBitmap(a, 5, b, 0, 8)
	require.Equal(t, 8, newLen)
	var got []int
	for i := 0; i < newLen; i++ {
		if a.Get(i) {
			got = append(got, i)
		}
	}
	require.Equal(t, []int{1, 3, 5, 7}, got)
}

func TestUnionArrayArray(t *testing.T) {
	a := arrayOf(1, 3, 5, 9, 9, 9) // extra capacity tail, only first 3 are logical
	b := arrayOf(2, 3, 9)
	newLen := unionArrayArray(a, 3, b, 0, 2) // source range covers only {2, 3}
	require.Equal(t, 4, newLen)
	require.Equal(t, []uint64{1, 2, 3, 5}, decodeInts(a, newLen))
}

func TestUnionBitmapArray(t *testing.T) {
	a := bitmapOf(10, 1, 3)
	newLen := unionBitmapArray(a, 5, arrayOf(2, 7, 12), 0, 3)
	require.Equal(t, 13, newLen)
	var got []int
	for i := 0; i < newLen; i++ {
		if a.Get(i) {
			got = append(got, i)
		}
	}
	require.Equal(t, []int{1, 2, 3, 7, 12}, got)
}

func TestUnionArrayBitmap(t *testing.T) {
	a := arrayOf(1, 3, 9, 9, 9)
	newLen := unionArrayBitmap(a, 2, bitmapOf(6, 1, 2, 4), 0, 6)
	require.Equal(t, 4, newLen)
	require.Equal(t, []uint64{1, 2, 3, 4}, decodeInts(a, newLen))
}

func decodeInts(v *bitpack.IntVector, length int) []uint64 {
	out := make([]uint64, length)
	for i := 0; i < length; i++ {
		out[i] = v.Get(i)
	}
	return out
}
