package coloring

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tmaklin/themisto/internal/bitpack"
)

// formatTag is the length-prefixed ASCII tag every serialized Storage
// carries ahead of its payload, so a loader trying several candidate
// coloring formats can distinguish "wrong format" from "corrupt data."
const formatTag = "sdsl-hybrid-v4"

// WriteTo serializes a finalized Storage: the format tag, then
// bitmap_concat, bitmap_starts, arrays_concat, arrays_starts,
// is_bitmap_marks, and finally the rank support, in that fixed order.
// Calling it before Finalize is a ProgrammerError.
func (s *Storage) WriteTo(w io.Writer) (int64, error) {
	if !s.finalized {
		panic(programmerError("WriteTo", "storage has not been finalized"))
	}

	var total int64
	n, err := writeTag(w, formatTag)
	total += n
	if err != nil {
		return total, fmt.Errorf("coloring: write storage tag: %w", err)
	}

	parts := []io.WriterTo{
		s.bitmapConcat,
		s.bitmapStarts,
		s.arraysConcat,
		s.arraysStarts,
		s.isBitmapMarks,
		s.isBitmapMarksRank,
	}
	for _, p := range parts {
		n, err := p.WriteTo(w)
		total += n
		if err != nil {
			return total, fmt.Errorf("coloring: write storage: %w", err)
		}
	}
	return total, nil
}

// ReadFrom replaces s's contents with a Storage previously written by
// WriteTo. If the persisted tag does not match formatTag, it returns a
// *FormatMismatchError (matched by errors.Is(err, ErrFormatMismatch))
// without touching s, rather than treating the mismatch as a fatal error;
// any other failure is a plain, surfaced I/O error.
func (s *Storage) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	tag, n, err := readTag(r)
	total += n
	if err != nil {
		return total, fmt.Errorf("coloring: read storage tag: %w", err)
	}
	if tag != formatTag {
		return total, &FormatMismatchError{Expected: formatTag, Actual: tag}
	}

	var bitmapConcat bitpack.BitVector
	var bitmapStarts, arraysConcat, arraysStarts bitpack.IntVector
	var isBitmapMarks bitpack.BitVector
	var rankSupport bitpack.RankSupport

	readers := []io.ReaderFrom{
		&bitmapConcat,
		&bitmapStarts,
		&arraysConcat,
		&arraysStarts,
		&isBitmapMarks,
		&rankSupport,
	}
	for _, rf := range readers {
		n, err := rf.ReadFrom(r)
		total += n
		if err != nil {
			return total, fmt.Errorf("coloring: read storage: %w", err)
		}
	}

	rankSupport.SetBitVector(&isBitmapMarks)

	s.bitmapConcat = &bitmapConcat
	s.bitmapStarts = &bitmapStarts
	s.arraysConcat = &arraysConcat
	s.arraysStarts = &arraysStarts
	s.isBitmapMarks = &isBitmapMarks
	s.isBitmapMarksRank = &rankSupport
	s.count = isBitmapMarks.Len()
	s.bitmapCount = rankSupport.Rank1(s.count)
	s.finalized = true
	return total, nil
}

func writeTag(w io.Writer, tag string) (int64, error) {
	var total int64
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tag))); err != nil {
		return total, err
	}
	total += 4
	n, err := io.WriteString(w, tag)
	total += int64(n)
	return total, err
}

func readTag(r io.Reader) (string, int64, error) {
	var total int64
	var length uint32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return "", total, err
	}
	total += 4
	buf := make([]byte, length)
	n, err := io.ReadFull(r, buf)
	total += int64(n)
	if err != nil {
		return "", total, err
	}
	return string(buf), total, nil
}
