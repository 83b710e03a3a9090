package coloring

import "github.com/tmaklin/themisto/internal/bitpack"

// ColorSet is a standalone, mutable color set. It owns exactly one of a
// bit vector or an integer vector; IntersectWith and UnionWith mutate it
// in place and may, in the cases documented on each method, switch which
// buffer it owns. Every prior View or slice obtained from a ColorSet is
// invalidated by a subsequent mutation.
type ColorSet struct {
	kind   encoding
	length int

	bitmap *bitpack.BitVector
	array  *bitpack.IntVector
}

// NewColorSet builds a ColorSet from a strictly increasing slice of
// colors, using the same classification predicate the storage uses on
// ingest so round-tripping a set through either path picks the same
// representation.
func NewColorSet(colors []Color) *ColorSet {
	if !isSortedUnique(colors) {
		panic(programmerError("NewColorSet", "input colors must be strictly increasing"))
	}
	return setFromColors(colors)
}

// FromView copies a View's borrowed range into a newly owned buffer of
// the same kind, so the resulting ColorSet can outlive the storage the
// View was borrowed from.
func FromView(v View) *ColorSet {
	cs := &ColorSet{kind: v.kind, length: v.length}
	switch v.kind {
	case encodingBitmap:
		bv := bitpack.NewBitVector(v.length)
		bv.CopyRangeFrom(0, v.bitmap, v.start, v.length)
		cs.bitmap = bv
	default:
		var b bitpack.IntBuilder
		for i := 0; i < v.length; i++ {
			b.Append(v.array.Get(v.start + i))
		}
		cs.array = b.Freeze()
	}
	return cs
}

func setFromColors(colors []Color) *ColorSet {
	kind := classify(colors)
	cs := &ColorSet{kind: kind}
	switch kind {
	case encodingBitmap:
		length := 0
		if len(colors) > 0 {
			length = int(max(colors)) + 1
		}
		bv := bitpack.NewBitVector(length)
		for _, c := range colors {
			bv.Set(int(c), true)
		}
		cs.bitmap = bv
		cs.length = length
	default:
		var b bitpack.IntBuilder
		for _, c := range colors {
			b.Append(uint64(c))
		}
		cs.array = b.Freeze()
		cs.length = len(colors)
	}
	return cs
}

// view returns a zero-cost View over cs's own owned buffer, letting the
// read API be implemented once on View and shared here.
func (cs *ColorSet) view() View {
	return View{kind: cs.kind, start: 0, length: cs.length, bitmap: cs.bitmap, array: cs.array}
}

// IsBitmap reports whether cs is currently backed by the bitmap buffer.
func (cs *ColorSet) IsBitmap() bool {
	return cs.kind == encodingBitmap
}

// Empty reports whether cs has no members.
func (cs *ColorSet) Empty() bool {
	return cs.view().Empty()
}

// Size returns cs's cardinality.
func (cs *ColorSet) Size() int {
	return cs.view().Size()
}

// SizeInBits returns the raw occupied range of cs's owned buffer.
func (cs *ColorSet) SizeInBits() int {
	return cs.view().SizeInBits()
}

// Contains reports whether c is a member of cs.
func (cs *ColorSet) Contains(c Color) bool {
	return cs.view().Contains(c)
}

// Materialize decodes cs into a sorted slice of colors.
func (cs *ColorSet) Materialize() []Color {
	return cs.view().Materialize()
}

// IntersectWith intersects cs in place with v. Three of the four
// (self, view) kind combinations dispatch directly into the matching
// kernel and preserve cs's kind. The fourth — self is a bitmap and v is
// an array — is expected to produce a sparse result, so the
// implementation copies v's array segment into a fresh owned buffer, runs
// the array-vs-bitmap kernel into that copy using cs's old bitmap as the
// source, and replaces cs's owned buffer with the result; cs switches to
// array kind. The prior owned buffer is always released before the new
// one, if any, is installed.
func (cs *ColorSet) IntersectWith(v View) {
	switch {
	case cs.kind == encodingBitmap && v.kind == encodingBitmap:
		cs.length = intersectBitmapBitmap(cs.bitmap, cs.length, v.bitmap, v.start, v.length)

	case cs.kind == encodingArray && v.kind == encodingArray:
		cs.length = intersectArrayArray(cs.array, cs.length, v.array, v.start, v.length)

	case cs.kind == encodingArray && v.kind == encodingBitmap:
		cs.length = intersectArrayBitmap(cs.array, cs.length, v.bitmap, v.start, v.length)

	default: // cs.kind == encodingBitmap && v.kind == encodingArray
		var b bitpack.IntBuilder
		for i := 0; i < v.length; i++ {
			b.Append(v.array.Get(v.start + i))
		}
		copyOfView := b.Freeze()
		newLen := intersectArrayBitmap(copyOfView, copyOfView.Len(), cs.bitmap, 0, cs.length)

		cs.bitmap = nil
		cs.kind = encodingArray
		cs.array = copyOfView
		cs.length = newLen
	}
}

// UnionWith unions cs in place with v by decoding both to sorted color
// slices, merging them, and re-running classification on the merged
// result, following the array-route contract documented for the mutable
// set's union: the only guarantee is that the resulting set equals the
// set-theoretic union, not which representation it ends up in.
func (cs *ColorSet) UnionWith(v View) {
	merged := mergeUnique(cs.Materialize(), v.Materialize())
	*cs = *setFromColors(merged)
}

// mergeUnique merges two sorted, strictly increasing color slices into a
// single sorted, strictly increasing slice containing their union.
func mergeUnique(a, b []Color) []Color {
	out := make([]Color, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
