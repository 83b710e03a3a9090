package coloring

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/tmaklin/themisto/blobstore"
	"github.com/tmaklin/themisto/compress"
)

// currentPointerName is the manifest-style pointer blob: its contents are
// the name of the currently published storage blob, the same indirection
// a log-structured store uses so Load never has to guess the latest
// version's name.
const currentPointerName = "CURRENT"

// Archive publishes and loads versioned, optionally compressed Storage
// snapshots through a BlobStore. Save is not safe for concurrent callers
// against the same BlobStore root, the same restriction Storage places on
// AddSet/Finalize; Load and LoadVersion may be called concurrently by any
// number of readers, including from other processes.
type Archive struct {
	store  blobstore.BlobStore
	codec  compress.Codec
	io     *rate.Limiter
	sem    *semaphore.Weighted
	logger *Logger
}

// ArchiveOption configures an Archive at construction time.
type ArchiveOption func(*Archive)

// WithArchiveCodec compresses every blob this Archive saves with c, and
// decompresses every blob it loads with the same c. The default is no
// compression.
func WithArchiveCodec(c compress.Codec) ArchiveOption {
	return func(a *Archive) { a.codec = c }
}

// WithArchiveLogger attaches a Logger for save/load outcomes.
func WithArchiveLogger(l *Logger) ArchiveOption {
	return func(a *Archive) { a.logger = l }
}

// WithIOBandwidth caps the Archive's aggregate save/load throughput at
// bytesPerSecond, for archives shared by many concurrent pseudoalignment
// workers pulling the same blob from object storage. The default is
// unlimited.
func WithIOBandwidth(bytesPerSecond float64) ArchiveOption {
	burst := int(bytesPerSecond)
	if burst < 1 {
		burst = 1
	}
	return func(a *Archive) { a.io = rate.NewLimiter(rate.Limit(bytesPerSecond), burst) }
}

// WithMaxConcurrentIO bounds how many Save/Load/LoadVersion calls this
// Archive will let run their BlobStore I/O concurrently. The default is 4.
func WithMaxConcurrentIO(n int64) ArchiveOption {
	return func(a *Archive) { a.sem = semaphore.NewWeighted(n) }
}

// NewArchive returns an Archive publishing to and loading from store.
func NewArchive(store blobstore.BlobStore, opts ...ArchiveOption) *Archive {
	a := &Archive{store: store, sem: semaphore.NewWeighted(4)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Save serializes s, optionally compresses the result, writes it under a
// new version name, and repoints CURRENT at that name. It returns the new
// version identifier.
func (a *Archive) Save(ctx context.Context, s *Storage) (string, error) {
	if err := a.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer a.sem.Release(1)

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("coloring: archive save: %w", err)
	}
	payload := buf.Bytes()

	if a.codec != nil {
		var compressed bytes.Buffer
		w := a.codec.NewWriter(&compressed)
		if _, err := w.Write(payload); err != nil {
			return "", fmt.Errorf("coloring: archive compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return "", fmt.Errorf("coloring: archive compress: %w", err)
		}
		payload = compressed.Bytes()
	}

	if err := waitBandwidth(ctx, a.io, len(payload)); err != nil {
		return "", err
	}

	version := nextVersion()
	name := blobName(version)
	if err := a.store.Put(ctx, name, payload); err != nil {
		a.logger.logArchive("save", name, len(payload), err)
		return "", fmt.Errorf("coloring: archive save: %w", err)
	}
	if err := a.store.Put(ctx, currentPointerName, []byte(name)); err != nil {
		a.logger.logArchive("save", currentPointerName, 0, err)
		return "", fmt.Errorf("coloring: archive save: %w", err)
	}
	a.logger.logArchive("save", name, len(payload), nil)
	return version, nil
}

// Load reads CURRENT and loads the storage blob it names.
func (a *Archive) Load(ctx context.Context) (*Storage, error) {
	name, err := a.readCurrent(ctx)
	if err != nil {
		return nil, err
	}
	return a.loadBlob(ctx, name)
}

// LoadVersion loads a specific version by id, bypassing CURRENT.
func (a *Archive) LoadVersion(ctx context.Context, version string) (*Storage, error) {
	return a.loadBlob(ctx, blobName(version))
}

func (a *Archive) readCurrent(ctx context.Context) (string, error) {
	blob, err := a.store.Open(ctx, currentPointerName)
	if err != nil {
		return "", fmt.Errorf("coloring: archive read current pointer: %w", err)
	}
	defer blob.Close()

	buf := make([]byte, blob.Size())
	if _, err := blob.ReadAt(ctx, buf, 0); err != nil && err != io.EOF {
		return "", fmt.Errorf("coloring: archive read current pointer: %w", err)
	}
	return string(buf), nil
}

// loadBlob performs the load work shared by Load and LoadVersion. A
// *FormatMismatchError from Storage.ReadFrom is returned unwrapped so
// errors.Is(err, ErrFormatMismatch) keeps working for a caller probing
// multiple candidate formats.
func (a *Archive) loadBlob(ctx context.Context, name string) (*Storage, error) {
	if err := a.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer a.sem.Release(1)

	blob, err := a.store.Open(ctx, name)
	if err != nil {
		a.logger.logArchive("load", name, 0, err)
		return nil, fmt.Errorf("coloring: archive load: %w", err)
	}
	defer blob.Close()

	raw := make([]byte, blob.Size())
	if _, err := blob.ReadAt(ctx, raw, 0); err != nil && err != io.EOF {
		a.logger.logArchive("load", name, 0, err)
		return nil, fmt.Errorf("coloring: archive load: %w", err)
	}

	if err := waitBandwidth(ctx, a.io, len(raw)); err != nil {
		return nil, err
	}

	var payload io.Reader = bytes.NewReader(raw)
	if a.codec != nil {
		decoded, err := a.codec.NewReader(payload)
		if err != nil {
			a.logger.logArchive("load", name, len(raw), err)
			return nil, fmt.Errorf("coloring: archive decompress: %w", err)
		}
		payload = decoded
	}

	var s Storage
	if _, err := s.ReadFrom(payload); err != nil {
		a.logger.logArchive("load", name, len(raw), err)
		return nil, err
	}
	a.logger.logArchive("load", name, len(raw), nil)
	return &s, nil
}

func blobName(version string) string {
	return fmt.Sprintf("storage-%s.bin", version)
}

// nextVersion returns a lexicographically sortable version identifier, so
// listing a BlobStore's "storage-*" blobs in name order also orders them
// by save time.
func nextVersion() string {
	return fmt.Sprintf("%020d", time.Now().UnixNano())
}

// waitBandwidth blocks until limiter has released enough tokens to cover
// total bytes, consuming them in chunks no larger than the limiter's
// burst size so a large snapshot never exceeds a single WaitN call's
// burst limit. A nil limiter means unlimited.
func waitBandwidth(ctx context.Context, limiter *rate.Limiter, total int) error {
	if limiter == nil {
		return nil
	}
	burst := limiter.Burst()
	if burst <= 0 {
		return nil
	}
	remaining := total
	for remaining > 0 {
		n := remaining
		if n > burst {
			n = burst
		}
		if err := limiter.WaitN(ctx, n); err != nil {
			return fmt.Errorf("coloring: archive bandwidth limiter: %w", err)
		}
		remaining -= n
	}
	return nil
}
