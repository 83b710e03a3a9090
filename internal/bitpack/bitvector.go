package bitpack

import "math/bits"

// BitVector is a packed, fixed-length sequence of bits.
type BitVector struct {
	words  []uint64
	length int // number of bits
}

// NewBitVector returns a zeroed BitVector of the given length in bits.
func NewBitVector(length int) *BitVector {
	return &BitVector{
		words:  make([]uint64, (length+63)/64),
		length: length,
	}
}

// Len returns the number of bits in the vector.
func (b *BitVector) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

// Get returns the bit at position i.
func (b *BitVector) Get(i int) bool {
	return b.words[i/64]&(uint64(1)<<(uint(i)%64)) != 0
}

// Set sets the bit at position i to v.
func (b *BitVector) Set(i int, v bool) {
	mask := uint64(1) << (uint(i) % 64)
	if v {
		b.words[i/64] |= mask
	} else {
		b.words[i/64] &^= mask
	}
}

// PopCountRange returns the number of set bits in [start, start+length).
func (b *BitVector) PopCountRange(start, length int) int {
	count := 0
	for i := start; i < start+length; i++ {
		if b.Get(i) {
			count++
		}
	}
	return count
}

// CopyRangeFrom copies length bits from src[srcStart:srcStart+length] into
// this vector starting at dstOffset. The destination must already have
// room for dstOffset+length bits.
func (b *BitVector) CopyRangeFrom(dstOffset int, src *BitVector, srcStart, length int) {
	for i := 0; i < length; i++ {
		b.Set(dstOffset+i, src.Get(srcStart+i))
	}
}

// Truncate shrinks the logical length without reallocating; bits past the
// new length are left untouched, matching the "destination is never
// resized, excess capacity is left in place" contract the set-algebra
// kernels rely on.
func (b *BitVector) Truncate(length int) {
	b.length = length
}

// BitBuilder accumulates bits one at a time during ingest, before the
// storage's total size is known and the bits can be packed into a frozen
// BitVector of exactly the right word count.
type BitBuilder struct {
	words  []uint64
	length int
}

// Append adds one bit to the end of the builder.
func (b *BitBuilder) Append(bit bool) {
	wordIdx := b.length / 64
	if wordIdx >= len(b.words) {
		b.words = append(b.words, 0)
	}
	if bit {
		b.words[wordIdx] |= uint64(1) << (uint(b.length) % 64)
	}
	b.length++
}

// Len returns the number of bits appended so far.
func (b *BitBuilder) Len() int {
	return b.length
}

// Freeze packs the builder's bits into a BitVector and resets the
// builder, matching Color_Set_Storage's one-shot transition from a
// dynamic vector<bool> to a static sdsl::bit_vector at finalize time.
func (b *BitBuilder) Freeze() *BitVector {
	bv := &BitVector{words: b.words, length: b.length}
	*b = BitBuilder{}
	return bv
}

// popcountWords is exposed for the rank support package-internal helper.
func popcountWords(words []uint64) uint64 {
	var total uint64
	for _, w := range words {
		total += uint64(bits.OnesCount64(w))
	}
	return total
}
