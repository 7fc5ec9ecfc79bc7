package morse

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var roundTripCases = []string{
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"abcdefghijklmnopqrstuvwxyz",
	"1234567890",
	":.?/-() ",
	"E",
	"E ",
	"E  ",
	"E   ",
	" E",
	"SOS",
	"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG",
	"CQ CQ DE W1AW/4 (73)",
	"",
}

// randomText returns n characters drawn from the table, mixing case.
func randomText(rng *rand.Rand, n int) string {
	alphabet := Alphabet()
	var b strings.Builder
	for range n {
		r := alphabet[rng.IntN(len(alphabet))]
		if r >= 'A' && r <= 'Z' && rng.IntN(2) == 0 {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func randomTexts(count, maxLen int) []string {
	rng := rand.New(rand.NewChaCha8([32]byte(bytes.Repeat([]byte{0xBA, 0xAD, 0xF0, 0x0D}, 8))))
	out := make([]string, count)
	for i := range out {
		out[i] = randomText(rng, rng.IntN(maxLen))
	}
	return out
}

// paddingSpaces is the number of spaces the zero padding of s decodes to.
func paddingSpaces(t testing.TB, s string) int {
	n, err := SymbolCount(s)
	require.NoError(t, err)
	pad := (4 - n%4) % 4
	return (pad + 1) / 2
}

func TestRoundTripStopMarker(t *testing.T) {
	enc := NewEncoder(WithStopMarker())

	for _, s := range append(roundTripCases, randomTexts(256, 128)...) {
		encoded, err := enc.Encode(s)
		require.NoError(t, err)

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, strings.ToUpper(s), decoded)
	}
}

func TestRoundTripTrailingSpaces(t *testing.T) {
	for _, s := range append(roundTripCases, randomTexts(256, 128)...) {
		encoded, err := Encode(s)
		require.NoError(t, err)

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, strings.ToUpper(s)+strings.Repeat(" ", paddingSpaces(t, s)), decoded, "input %q", s)
	}
}

func TestPaddingBoundary(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"E", "E "},      // 2 symbols, 2 slots of padding
		{"E ", "E "},     // 4 symbols, exact byte
		{"E  ", "E   "},  // 6 symbols, 2 slots of padding
		{"E   ", "E   "}, // 8 symbols, exact bytes
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			encoded, err := Encode(tc.input)
			require.NoError(t, err)

			decoded, err := Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, tc.expected, decoded)
		})
	}
}

func TestAlphabetRoundTrip(t *testing.T) {
	alphabet := Alphabet()
	require.Len(t, alphabet, 44)

	for _, r := range alphabet {
		t.Run(string(r), func(t *testing.T) {
			encoded, err := NewEncoder(WithStopMarker()).Encode(string(r))
			require.NoError(t, err)
			decoded, err := Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, string(r), decoded)

			encoded, err = Encode(string(r))
			require.NoError(t, err)
			decoded, err = Decode(encoded)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(decoded, string(r)))
			require.Empty(t, strings.TrimSpace(decoded[1:]))
		})
	}
}

func TestEncodedLen(t *testing.T) {
	for _, s := range append(roundTripCases, randomTexts(128, 64)...) {
		n, err := SymbolCount(s)
		require.NoError(t, err)

		encoded, err := Encode(s)
		require.NoError(t, err)
		require.Equal(t, (n+3)/4, len(encoded))

		l, err := EncodedLen(s, false)
		require.NoError(t, err)
		require.Equal(t, len(encoded), l)

		encoded, err = NewEncoder(WithStopMarker()).Encode(s)
		require.NoError(t, err)
		l, err = EncodedLen(s, true)
		require.NoError(t, err)
		require.Equal(t, len(encoded), l)

		require.LessOrEqual(t, len(encoded), MaxEncodedLen(len(s)))

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.LessOrEqual(t, len(decoded), MaxDecodedLen(len(encoded)))
	}
}

func TestSymbolCount(t *testing.T) {
	cases := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"E", 2},
		{" ", 2},
		{"SOS", 12},
		{"?", 7},
	}

	for _, tc := range cases {
		n, err := SymbolCount(tc.input)
		require.NoError(t, err)
		require.Equal(t, tc.expected, n, "input %q", tc.input)
	}

	_, err := SymbolCount("A_B")
	require.ErrorIs(t, err, ErrUnsupportedCharacter)

	_, err = EncodedLen("A_B", true)
	require.ErrorIs(t, err, ErrUnsupportedCharacter)
}
