package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Codec wraps pierrec/lz4/v4, offered as a faster, lower-ratio
// alternative to zstd for archives where load latency matters more than
// on-disk size.
type lz4Codec struct{}

func (lz4Codec) Name() string { return "lz4" }

func (lz4Codec) NewWriter(w io.Writer) io.WriteCloser {
	return lz4.NewWriter(w)
}

func (lz4Codec) NewReader(r io.Reader) (io.Reader, error) {
	return lz4.NewReader(r), nil
}
