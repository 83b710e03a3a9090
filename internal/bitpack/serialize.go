package bitpack

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteTo writes b in a fixed binary layout: bit length, word count, then
// the packed words. It implements io.WriterTo so callers can chain it directly into a
// larger Storage.WriteTo without an intermediate buffer.
func (b *BitVector) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := binary.Write(cw, binary.LittleEndian, uint64(b.length)); err != nil {
		return cw.n, fmt.Errorf("bitpack: write bitvector length: %w", err)
	}
	if err := binary.Write(cw, binary.LittleEndian, uint64(len(b.words))); err != nil {
		return cw.n, fmt.Errorf("bitpack: write bitvector word count: %w", err)
	}
	if len(b.words) > 0 {
		if err := binary.Write(cw, binary.LittleEndian, b.words); err != nil {
			return cw.n, fmt.Errorf("bitpack: write bitvector words: %w", err)
		}
	}
	return cw.n, nil
}

// ReadFrom reads a BitVector previously written by WriteTo, replacing b's
// contents.
func (b *BitVector) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	var length, numWords uint64
	if err := binary.Read(cr, binary.LittleEndian, &length); err != nil {
		return cr.n, fmt.Errorf("bitpack: read bitvector length: %w", err)
	}
	if err := binary.Read(cr, binary.LittleEndian, &numWords); err != nil {
		return cr.n, fmt.Errorf("bitpack: read bitvector word count: %w", err)
	}
	words := make([]uint64, numWords)
	if numWords > 0 {
		if err := binary.Read(cr, binary.LittleEndian, words); err != nil {
			return cr.n, fmt.Errorf("bitpack: read bitvector words: %w", err)
		}
	}
	b.length = int(length)
	b.words = words
	return cr.n, nil
}

// WriteTo writes v in a fixed binary layout: element width, element count,
// word count, then the packed words.
func (v *IntVector) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := binary.Write(cw, binary.LittleEndian, uint64(v.width)); err != nil {
		return cw.n, fmt.Errorf("bitpack: write intvector width: %w", err)
	}
	if err := binary.Write(cw, binary.LittleEndian, uint64(v.length)); err != nil {
		return cw.n, fmt.Errorf("bitpack: write intvector length: %w", err)
	}
	if err := binary.Write(cw, binary.LittleEndian, uint64(len(v.words))); err != nil {
		return cw.n, fmt.Errorf("bitpack: write intvector word count: %w", err)
	}
	if len(v.words) > 0 {
		if err := binary.Write(cw, binary.LittleEndian, v.words); err != nil {
			return cw.n, fmt.Errorf("bitpack: write intvector words: %w", err)
		}
	}
	return cw.n, nil
}

// ReadFrom reads an IntVector previously written by WriteTo, replacing v's
// contents.
func (v *IntVector) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	var width, length, numWords uint64
	if err := binary.Read(cr, binary.LittleEndian, &width); err != nil {
		return cr.n, fmt.Errorf("bitpack: read intvector width: %w", err)
	}
	if err := binary.Read(cr, binary.LittleEndian, &length); err != nil {
		return cr.n, fmt.Errorf("bitpack: read intvector length: %w", err)
	}
	if err := binary.Read(cr, binary.LittleEndian, &numWords); err != nil {
		return cr.n, fmt.Errorf("bitpack: read intvector word count: %w", err)
	}
	words := make([]uint64, numWords)
	if numWords > 0 {
		if err := binary.Read(cr, binary.LittleEndian, words); err != nil {
			return cr.n, fmt.Errorf("bitpack: read intvector words: %w", err)
		}
	}
	v.width = int(width)
	v.length = int(length)
	v.words = words
	return cr.n, nil
}

// WriteTo writes r's cumulative block popcount table. The underlying
// BitVector is serialized separately by its owner; RankSupport.ReadFrom
// must be paired with SetBitVector to reattach it after load.
func (r *RankSupport) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := binary.Write(cw, binary.LittleEndian, uint64(len(r.blockPopcount))); err != nil {
		return cw.n, fmt.Errorf("bitpack: write rank block count: %w", err)
	}
	if len(r.blockPopcount) > 0 {
		if err := binary.Write(cw, binary.LittleEndian, r.blockPopcount); err != nil {
			return cw.n, fmt.Errorf("bitpack: write rank blocks: %w", err)
		}
	}
	return cw.n, nil
}

// ReadFrom reads a RankSupport's block table previously written by
// WriteTo. The caller must call SetBitVector afterward before issuing any
// Rank1/Rank0 queries.
func (r *RankSupport) ReadFrom(reader io.Reader) (int64, error) {
	cr := &countingReader{r: reader}
	var numBlocks uint64
	if err := binary.Read(cr, binary.LittleEndian, &numBlocks); err != nil {
		return cr.n, fmt.Errorf("bitpack: read rank block count: %w", err)
	}
	blocks := make([]uint64, numBlocks)
	if numBlocks > 0 {
		if err := binary.Read(cr, binary.LittleEndian, blocks); err != nil {
			return cr.n, fmt.Errorf("bitpack: read rank blocks: %w", err)
		}
	}
	r.blockPopcount = blocks
	return cr.n, nil
}

// SetBitVector reattaches the BitVector a RankSupport ranks over after it
// and the RankSupport were loaded independently, since RankSupport does
// not own or duplicate the bits it was built from.
func (r *RankSupport) SetBitVector(bv *BitVector) {
	r.bv = bv
}

// SizeBytes returns the serialized size of r.blockPopcount in bytes, for
// Storage.SpaceBreakdown accounting without a full WriteTo round trip.
func (r *RankSupport) SizeBytes() int {
	return 8 + 8*len(r.blockPopcount)
}

// SizeBytes returns the serialized size of v in bytes.
func (v *IntVector) SizeBytes() int {
	return 8 + 8 + 8 + 8*len(v.words)
}

// SizeBytes returns the serialized size of b in bytes.
func (b *BitVector) SizeBytes() int {
	return 8 + 8 + 8*len(b.words)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
