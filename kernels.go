package coloring

import "github.com/tmaklin/themisto/internal/bitpack"

// This file materializes the 2x2x2 kernel matrix (intersection and union,
// each over {bitmap, array} x {bitmap, array}) explicitly as eight
// functions rather than through dynamic dispatch, since each cell has a
// genuinely different inner loop. Every kernel overwrites a prefix of a
// caller-owned destination buffer and returns the new logical length; none
// of them reallocate the destination.

// intersectBitmapBitmap intersects a bitmap destination range [0, destLen)
// in place with a bitmap source range [srcStart, srcStart+srcLen).
func intersectBitmapBitmap(dest *bitpack.BitVector, destLen int, src *bitpack.BitVector, srcStart, srcLen int) int {
	newLen := destLen
	if srcLen < newLen {
		newLen = srcLen
	}
	for i := 0; i < newLen; i++ {
		dest.Set(i, dest.Get(i) && src.Get(srcStart+i))
	}
	return newLen
}

// intersectArrayArray intersects a sorted array destination [0, destLen)
// in place with a sorted array source range via a merge walk, compacting
// survivors toward the front as it goes.
func intersectArrayArray(dest *bitpack.IntVector, destLen int, src *bitpack.IntVector, srcStart, srcLen int) int {
	i, j, w := 0, 0, 0
	for i < destLen && j < srcLen {
		a := dest.Get(i)
		b := src.Get(srcStart + j)
		switch {
		case a == b:
			dest.Set(w, a)
			w++
			i++
			j++
		case a < b:
			i++
		default:
			j++
		}
	}
	return w
}

// intersectArrayBitmap keeps elements of a sorted array destination that
// are present in a bitmap source range, compacting in place.
func intersectArrayBitmap(dest *bitpack.IntVector, destLen int, src *bitpack.BitVector, srcStart, bitmapLen int) int {
	w := 0
	for i := 0; i < destLen; i++ {
		x := dest.Get(i)
		if int(x) < bitmapLen && src.Get(srcStart+int(x)) {
			dest.Set(w, x)
			w++
		}
	}
	return w
}

// intersectBitmapArray filters a bitmap destination range down to the
// positions also named by a sorted array source, zeroing the rest. The
// result remains a bitmap. ColorSet.IntersectWith does not call it: for a
// bitmap set and an array view it runs intersectArrayBitmap on a copy of
// the array instead and switches the set to array kind.
func intersectBitmapArray(dest *bitpack.BitVector, destLen int, src *bitpack.IntVector, srcStart, srcLen int) int {
	kept := make([]int, 0, srcLen)
	maxKept := -1
	for i := 0; i < srcLen; i++ {
		x := int(src.Get(srcStart + i))
		if x >= destLen {
			break
		}
		if dest.Get(x) {
			kept = append(kept, x)
			maxKept = x
		}
	}
	for i := 0; i < destLen; i++ {
		dest.Set(i, false)
	}
	for _, x := range kept {
		dest.Set(x, true)
	}
	return maxKept + 1
}

// unionBitmapBitmap unions a bitmap destination range [0, destLen) in
// place with a bitmap source range. dest must already have capacity for
// max(destLen, srcLen) bits.
func unionBitmapBitmap(dest *bitpack.BitVector, destLen int, src *bitpack.BitVector, srcStart, srcLen int) int {
	newLen := destLen
	if srcLen > newLen {
		newLen = srcLen
	}
	for i := 0; i < newLen; i++ {
		a := i < destLen && dest.Get(i)
		b := i < srcLen && src.Get(srcStart+i)
		dest.Set(i, a || b)
	}
	return newLen
}

// unionBitmapArray unions a bitmap destination in place with a sorted
// array source, extending the destination's logical length when the
// array contributes a color past the old length. dest must already have
// capacity for the union's maximum possible length.
func unionBitmapArray(dest *bitpack.BitVector, destLen int, src *bitpack.IntVector, srcStart, srcLen int) int {
	newLen := destLen
	for i := 0; i < srcLen; i++ {
		x := int(src.Get(srcStart + i))
		if x+1 > newLen {
			newLen = x + 1
		}
		dest.Set(x, true)
	}
	return newLen
}

// unionArrayArray unions two sorted arrays via a dynamically sized
// intermediate, as permitted for union kernels, then copies the merged
// result back into dest. dest must already have capacity for
// destLen+srcLen elements.
func unionArrayArray(dest *bitpack.IntVector, destLen int, src *bitpack.IntVector, srcStart, srcLen int) int {
	merged := make([]uint64, 0, destLen+srcLen)
	i, j := 0, 0
	for i < destLen && j < srcLen {
		a := dest.Get(i)
		b := src.Get(srcStart + j)
		switch {
		case a == b:
			merged = append(merged, a)
			i++
			j++
		case a < b:
			merged = append(merged, a)
			i++
		default:
			merged = append(merged, b)
			j++
		}
	}
	for ; i < destLen; i++ {
		merged = append(merged, dest.Get(i))
	}
	for ; j < srcLen; j++ {
		merged = append(merged, src.Get(srcStart+j))
	}
	for k, v := range merged {
		dest.Set(k, v)
	}
	return len(merged)
}

// unionArrayBitmap unions a sorted array destination with a bitmap source
// range by decoding the bitmap range and merging, via a dynamically sized
// intermediate. dest must already have capacity for destLen plus the
// bitmap range's popcount.
func unionArrayBitmap(dest *bitpack.IntVector, destLen int, src *bitpack.BitVector, srcStart, srcLen int) int {
	bitmapColors := make([]uint64, 0, srcLen)
	for i := 0; i < srcLen; i++ {
		if src.Get(srcStart + i) {
			bitmapColors = append(bitmapColors, uint64(i))
		}
	}
	merged := make([]uint64, 0, destLen+len(bitmapColors))
	i, j := 0, 0
	for i < destLen && j < len(bitmapColors) {
		a := dest.Get(i)
		b := bitmapColors[j]
		switch {
		case a == b:
			merged = append(merged, a)
			i++
			j++
		case a < b:
			merged = append(merged, a)
			i++
		default:
			merged = append(merged, b)
			j++
		}
	}
	for ; i < destLen; i++ {
		merged = append(merged, dest.Get(i))
	}
	for ; j < len(bitmapColors); j++ {
		merged = append(merged, bitmapColors[j])
	}
	for k, v := range merged {
		dest.Set(k, v)
	}
	return len(merged)
}
