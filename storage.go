package coloring

import (
	"iter"

	"github.com/tmaklin/themisto/internal/bitpack"
)

// Storage holds every distinct color set an index needs, concatenated
// into two shared buffers. It is filled by repeated AddSet calls followed
// by exactly one Finalize; after Finalize it is read-only, and its
// ViewOf/IterViews/SpaceBreakdown methods may be called concurrently by
// any number of readers.
type Storage struct {
	finalized bool
	count     int

	bitmapConcat      *bitpack.BitVector
	bitmapStarts      *bitpack.IntVector
	arraysConcat      *bitpack.IntVector
	arraysStarts      *bitpack.IntVector
	isBitmapMarks     *bitpack.BitVector
	isBitmapMarksRank *bitpack.RankSupport

	bitmapBuilder       bitpack.BitBuilder
	bitmapStartsBuilder bitpack.IntBuilder
	arraysBuilder       bitpack.IntBuilder
	arraysStartsBuilder bitpack.IntBuilder
	isBitmapBuilder     bitpack.BitBuilder
	bitmapCount         int

	logger   *Logger
	progress *progressReporter
}

// StorageOption configures a Storage at construction time.
type StorageOption func(*Storage)

// WithLogger attaches a Logger for ingest progress and finalize
// summaries. The default is a nil logger, which logs nothing.
func WithLogger(l *Logger) StorageOption {
	return func(s *Storage) { s.logger = l }
}

// WithProgressInterval overrides the ingest-progress logging rate, in
// events per second. The default is defaultProgressEventsPerSecond.
func WithProgressInterval(eventsPerSecond float64) StorageOption {
	return func(s *Storage) {
		s.progress = newProgressReporter(s.logger, eventsPerSecond)
	}
}

// NewStorage returns an empty Storage ready to accept AddSet calls.
func NewStorage(opts ...StorageOption) *Storage {
	s := &Storage{}
	for _, opt := range opts {
		opt(s)
	}
	if s.progress == nil {
		s.progress = newProgressReporter(s.logger, defaultProgressEventsPerSecond)
	}
	s.progress.logger = s.logger
	return s
}

// AddSet appends one color set to the storage, assigning it the next
// sequential id. colors must be strictly increasing; violating that, or
// calling AddSet after Finalize, is a ProgrammerError.
func (s *Storage) AddSet(colors []Color) {
	if s.finalized {
		panic(programmerError("AddSet", "storage is already finalized"))
	}
	if !isSortedUnique(colors) {
		panic(programmerError("AddSet", "input colors must be strictly increasing"))
	}

	switch classify(colors) {
	case encodingBitmap:
		length := 0
		if len(colors) > 0 {
			length = int(max(colors)) + 1
		}
		bits := make([]bool, length)
		for _, c := range colors {
			bits[c] = true
		}
		s.bitmapStartsBuilder.Append(uint64(s.bitmapBuilder.Len()))
		for _, b := range bits {
			s.bitmapBuilder.Append(b)
		}
		s.isBitmapBuilder.Append(true)
		s.bitmapCount++

	default:
		s.arraysStartsBuilder.Append(uint64(s.arraysBuilder.Len()))
		for _, c := range colors {
			s.arraysBuilder.Append(uint64(c))
		}
		s.isBitmapBuilder.Append(false)
	}

	s.count++
	s.progress.tick(s.count)
}

// Finalize freezes the dynamic ingest buffers into packed form, builds
// rank support over the is-bitmap marks, and makes the storage read-only.
// Calling it more than once is a ProgrammerError.
func (s *Storage) Finalize() {
	if s.finalized {
		panic(programmerError("Finalize", "storage is already finalized"))
	}

	s.bitmapStartsBuilder.Append(uint64(s.bitmapBuilder.Len()))
	s.arraysStartsBuilder.Append(uint64(s.arraysBuilder.Len()))

	s.bitmapConcat = s.bitmapBuilder.Freeze()
	s.bitmapStarts = s.bitmapStartsBuilder.Freeze()
	s.arraysConcat = s.arraysBuilder.Freeze()
	s.arraysStarts = s.arraysStartsBuilder.Freeze()
	s.isBitmapMarks = s.isBitmapBuilder.Freeze()
	s.isBitmapMarksRank = bitpack.NewRankSupport(s.isBitmapMarks)

	s.finalized = true
	s.logger.logFinalize(s.count, s.bitmapCount)
}

// Count returns the number of stored sets.
func (s *Storage) Count() int {
	return s.count
}

// ViewOf resolves a set id to a View over the storage's shared buffers.
// id must be in [0, Count()) and Finalize must already have run;
// violating either is a ProgrammerError.
func (s *Storage) ViewOf(id int) View {
	if !s.finalized {
		panic(programmerError("ViewOf", "storage has not been finalized"))
	}
	if id < 0 || id >= s.count {
		panic(programmerErrorf("ViewOf", "set id %d out of range [0,%d)", id, s.count))
	}

	if s.isBitmapMarks.Get(id) {
		k := s.isBitmapMarksRank.Rank1(id)
		start := int(s.bitmapStarts.Get(k))
		end := int(s.bitmapStarts.Get(k + 1))
		return View{kind: encodingBitmap, start: start, length: end - start, bitmap: s.bitmapConcat}
	}

	k := id - s.isBitmapMarksRank.Rank1(id)
	start := int(s.arraysStarts.Get(k))
	end := int(s.arraysStarts.Get(k + 1))
	return View{kind: encodingArray, start: start, length: end - start, array: s.arraysConcat}
}

// IterViews returns a lazy sequence of all stored views in id order.
func (s *Storage) IterViews() iter.Seq[View] {
	return func(yield func(View) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(s.ViewOf(i)) {
				return
			}
		}
	}
}

// SpaceBreakdown returns the serialized byte size of each named storage
// component, for upstream space-usage reporting. Finalize must already
// have run.
func (s *Storage) SpaceBreakdown() map[string]int {
	if !s.finalized {
		panic(programmerError("SpaceBreakdown", "storage has not been finalized"))
	}
	return map[string]int{
		"bitmaps-concat":               s.bitmapConcat.SizeBytes(),
		"bitmaps-starts":               s.bitmapStarts.SizeBytes(),
		"arrays-concat":                s.arraysConcat.SizeBytes(),
		"arrays-starts":                s.arraysStarts.SizeBytes(),
		"is-bitmap-marks":              s.isBitmapMarks.SizeBytes(),
		"is-bitmap-marks-rank-support": s.isBitmapMarksRank.SizeBytes(),
	}
}
