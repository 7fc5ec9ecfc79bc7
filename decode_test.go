package morse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendDecode(t *testing.T) {
	out, err := AppendDecode([]byte("> "), []byte{0x2A, 0x3F, 0x2A})
	require.NoError(t, err)
	require.Equal(t, "> SOS", string(out))

	out, err = AppendDecode([]byte("> "), []byte{0xFF})
	require.Error(t, err)
	require.Nil(t, out)
}

func BenchmarkDecoder(b *testing.B) {
	src, err := Encode(string(bytes.Repeat([]byte("THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG 0123456789 "), 1024)))
	require.NoError(b, err)

	dst := make([]byte, 0, MaxDecodedLen(len(src)))

	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for b.Loop() {
		_, err = AppendDecode(dst[:0], src)
		if err != nil {
			b.Fatal(err)
		}
	}
}
