package morse

// SymbolCount returns the number of 2-bit symbols text packs into, not
// counting a stop marker. Every character costs its pattern plus one End;
// a space costs two.
func SymbolCount(text string) (int, error) {
	n := 0
	for i, r := range text {
		seq, ok := lookup(r)
		if !ok {
			return 0, &UnsupportedCharacterError{Char: r, Offset: i}
		}
		n += len(seq) + 1
	}
	return n, nil
}

// EncodedLen returns the exact length of the packed form of text.
func EncodedLen(text string, stop bool) (int, error) {
	n, err := SymbolCount(text)
	if err != nil {
		return 0, err
	}
	if stop {
		n++
	}
	return (n + 3) / 4, nil
}

// MaxEncodedLen returns the maximum packed length of n characters,
// including a stop marker.
func MaxEncodedLen(n int) int {
	return (n*(maxPatternLen+1) + 1 + 3) / 4
}

// MaxDecodedLen returns the maximum number of characters n packed bytes can
// decode to. Every character takes at least two symbols.
func MaxDecodedLen(n int) int {
	return 2 * n
}
