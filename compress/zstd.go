package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdCodec wraps klauspost/compress/zstd, suited to archived coloring
// snapshots: their shared concatenation buffers are
// long runs of structured integers, which zstd's window matching
// compresses well.
type zstdCodec struct{}

func (zstdCodec) Name() string { return "zstd" }

func (zstdCodec) NewWriter(w io.Writer) io.WriteCloser {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		// zstd.NewWriter only fails on invalid options; none are set here.
		panic(err)
	}
	return enc
}

func (zstdCodec) NewReader(r io.Reader) (io.Reader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &zstdReader{dec}, nil
}

// zstdReader adapts *zstd.Decoder's Close (which frees goroutines/buffers
// but returns no error worth propagating on a read-only load path) away
// from the plain io.Reader callers expect.
type zstdReader struct {
	dec *zstd.Decoder
}

func (r *zstdReader) Read(p []byte) (int, error) {
	return r.dec.Read(p)
}
