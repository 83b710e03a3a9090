package bitpack

import "math/bits"

// rankBlockWords is the number of 64-bit words per rank sampling block
// (512 bits), matching sdsl's rank_support_v5 superblock granularity
// closely enough for the O(1)-amortized behavior the coloring store needs
// without adopting sdsl's two-level block/superblock split.
const rankBlockWords = 8

// RankSupport answers rank-1 queries (count of set bits before a
// position) in O(blockWords) time via precomputed cumulative block
// popcounts, the structure is-bitmap-marks uses to translate a color set
// id into its offset within bitmap_starts.
type RankSupport struct {
	blockPopcount []uint64 // cumulative popcount at the start of each block
	bv            *BitVector
}

// NewRankSupport builds rank support over bv. bv must not be mutated
// afterward; the rank structure does not observe later changes.
func NewRankSupport(bv *BitVector) *RankSupport {
	numBlocks := (len(bv.words) + rankBlockWords - 1) / rankBlockWords
	blockPopcount := make([]uint64, numBlocks+1)
	var running uint64
	for b := 0; b < numBlocks; b++ {
		blockPopcount[b] = running
		start := b * rankBlockWords
		end := start + rankBlockWords
		if end > len(bv.words) {
			end = len(bv.words)
		}
		running += popcountWords(bv.words[start:end])
	}
	blockPopcount[numBlocks] = running
	return &RankSupport{blockPopcount: blockPopcount, bv: bv}
}

// Rank1 returns the number of set bits in [0, i).
func (r *RankSupport) Rank1(i int) int {
	wordIdx := i / 64
	blockIdx := wordIdx / rankBlockWords
	count := r.blockPopcount[blockIdx]

	blockStart := blockIdx * rankBlockWords
	for w := blockStart; w < wordIdx; w++ {
		count += uint64(bits.OnesCount64(r.bv.words[w]))
	}

	bitOff := uint(i % 64)
	if bitOff > 0 {
		tailMask := uint64(1)<<bitOff - 1
		count += uint64(bits.OnesCount64(r.bv.words[wordIdx] & tailMask))
	}
	return int(count)
}

// Rank0 returns the number of zero bits in [0, i).
func (r *RankSupport) Rank0(i int) int {
	return i - r.Rank1(i)
}
