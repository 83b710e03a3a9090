package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecsRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("coloring-storage-snapshot-payload"), 500)

	for _, name := range []string{"zstd", "lz4", "none"} {
		t.Run(name, func(t *testing.T) {
			codec, ok := ByName(name)
			require.True(t, ok)

			var buf bytes.Buffer
			w := codec.NewWriter(&buf)
			_, err := w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := codec.NewReader(&buf)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}

func TestByNameUnknownCodec(t *testing.T) {
	_, ok := ByName("unknown-codec")
	require.False(t, ok)
}

func TestRegisterAddsCodec(t *testing.T) {
	Register(noneCodec{}) // idempotent re-register of a known codec
	_, ok := ByName("none")
	require.True(t, ok)
}
