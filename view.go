package coloring

import "github.com/tmaklin/themisto/internal/bitpack"

// View is a non-owning handle into one of a Storage's two shared
// concatenation buffers. Its lifetime must not exceed the Storage that
// produced it; Views are cheap value types and are freely copyable.
type View struct {
	kind   encoding
	start  int
	length int // bits for a bitmap view, elements for an array view

	bitmap *bitpack.BitVector
	array  *bitpack.IntVector
}

// IsBitmap reports whether the view is backed by the bitmap buffer.
func (v View) IsBitmap() bool {
	return v.kind == encodingBitmap
}

// Empty reports whether the view's color set has no members.
func (v View) Empty() bool {
	return v.Size() == 0
}

// Size returns the view's cardinality: a popcount over the bit range for
// a bitmap view, or the element count for an array view.
func (v View) Size() int {
	if v.kind == encodingBitmap {
		return v.bitmap.PopCountRange(v.start, v.length)
	}
	return v.length
}

// SizeInBits returns the number of bits the view's range occupies, for
// accounting purposes: the range length for a bitmap view, the element
// count times the element width for an array view. It is not the
// cardinality.
func (v View) SizeInBits() int {
	if v.kind == encodingBitmap {
		return v.length
	}
	return v.length * v.array.Width()
}

// Contains reports whether color c is a member of the view's set.
func (v View) Contains(c Color) bool {
	if v.kind == encodingBitmap {
		i := int(c)
		if i >= v.length {
			return false
		}
		return v.bitmap.Get(v.start + i)
	}
	lo, hi := 0, v.length
	for lo < hi {
		mid := (lo + hi) / 2
		e := Color(v.array.Get(v.start + mid))
		switch {
		case e == c:
			return true
		case e < c:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}

// Materialize decodes the view into a sorted slice of colors.
func (v View) Materialize() []Color {
	if v.kind == encodingBitmap {
		out := make([]Color, 0, v.Size())
		for i := 0; i < v.length; i++ {
			if v.bitmap.Get(v.start + i) {
				out = append(out, Color(i))
			}
		}
		return out
	}
	out := make([]Color, v.length)
	for i := 0; i < v.length; i++ {
		out[i] = Color(v.array.Get(v.start + i))
	}
	return out
}
