package compress

import "io"

// Codec wraps one compression format behind a uniform streaming
// interface, so an Archive can apply whichever codec a caller selected
// without knowing its underlying library.
type Codec interface {
	// Name returns the codec's registry name, the key ByName finds it
	// under. It is not recorded in archived snapshots; a loading Archive
	// uses whichever codec it was configured with.
	Name() string
	// NewWriter wraps w so writes to the result are compressed.
	// Closing the returned writer must flush and finalize the stream.
	NewWriter(w io.Writer) io.WriteCloser
	// NewReader wraps r so reads from the result are decompressed.
	NewReader(r io.Reader) (io.Reader, error)
}

var registry = map[string]Codec{}

func init() {
	Register(zstdCodec{})
	Register(lz4Codec{})
	Register(noneCodec{})
}

// Register adds or replaces a codec in the global registry under its own
// Name().
func Register(c Codec) {
	registry[c.Name()] = c
}

// ByName looks up a registered codec. The zero value and ok=false are
// returned if name is not registered.
func ByName(name string) (Codec, bool) {
	c, ok := registry[name]
	return c, ok
}
