package coloring

import "math/bits"

// encoding identifies which of the two shared buffers a color set's
// content lives in.
type encoding int

const (
	encodingArray encoding = iota
	encodingBitmap
)

// classify applies the shared representation policy: given a sorted,
// strictly increasing, non-empty colors slice with maximum element m,
// choose bitmap iff ceil(log2(max(m,2))) * len(colors) > m, else array.
// Empty input is always classified as array.
//
// This predicate must agree between storage ingest and mutable-set
// construction, so both paths call it rather than duplicating the
// inequality.
func classify(colors []Color) encoding {
	if len(colors) == 0 {
		return encodingArray
	}
	m := max(colors)
	base := m
	if base < 2 {
		base = 2
	}
	logWidth := bits.Len64(uint64(base) - 1)
	if uint64(logWidth)*uint64(len(colors)) > uint64(m) {
		return encodingBitmap
	}
	return encodingArray
}
