package morse

import (
	"fmt"
	"strings"
)

// codes is the single source both lookup directions are generated from.
// The space pattern is empty: a word gap is written as one End that the
// decoder absorbs as data, followed by the usual terminating End.
var codes = [...]struct {
	char    byte
	pattern string
}{
	{'A', ".-"},
	{'B', "-..."},
	{'C', "-.-."},
	{'D', "-.."},
	{'E', "."},
	{'F', "..-."},
	{'G', "--."},
	{'H', "...."},
	{'I', ".."},
	{'J', ".---"},
	{'K', "-.-"},
	{'L', ".-.."},
	{'M', "--"},
	{'N', "-."},
	{'O', "---"},
	{'P', ".--."},
	{'Q', "--.-"},
	{'R', ".-."},
	{'S', "..."},
	{'T', "-"},
	{'U', "..-"},
	{'V', "...-"},
	{'W', ".--"},
	{'X', "-..-"},
	{'Y', "-.--"},
	{'Z', "--.."},

	{'1', ".----"},
	{'2', "..---"},
	{'3', "...--"},
	{'4', "....-"},
	{'5', "....."},
	{'6', "-...."},
	{'7', "--..."},
	{'8', "---.."},
	{'9', "----."},
	{'0', "-----"},

	{':', "-..--"},
	{'.', ".-.-.-"},
	{'?', "..--.."},
	{'/', "-..-."},
	{'-', "-....-"},
	{'(', "-.--."},
	{')', "-.--.-"},

	{' ', ""},
}

const (
	maxPatternLen = 6
	maxCodeBits   = 2 * maxPatternLen
)

var (
	// indexed by ASCII; nil means unsupported
	encodeLUT [128][]Symbol
	// indexed by code word; 0 means no entry (space is stored as ' ')
	decodeLUT [1 << maxCodeBits]byte
)

func init() {
	for _, c := range codes {
		seq := parsePattern(c.pattern)
		if len(seq) == 0 {
			seq = []Symbol{End}
		}
		if len(seq) > maxPatternLen {
			panic(fmt.Sprintf("morse: pattern for %q exceeds %d symbols", c.char, maxPatternLen))
		}
		if encodeLUT[c.char] != nil {
			panic(fmt.Sprintf("morse: duplicate table entry for %q", c.char))
		}
		code := codeWord(seq)
		if prev := decodeLUT[code]; prev != 0 {
			panic(fmt.Sprintf("morse: %q and %q share code word %d", prev, c.char, code))
		}

		encodeLUT[c.char] = seq
		decodeLUT[code] = c.char
		if c.char >= 'A' && c.char <= 'Z' {
			encodeLUT[c.char+'a'-'A'] = seq
		}
	}
}

func parsePattern(p string) []Symbol {
	seq := make([]Symbol, 0, len(p))
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '.':
			seq = append(seq, Dit)
		case '-':
			seq = append(seq, Dah)
		default:
			panic(fmt.Sprintf("morse: invalid pattern %q", p))
		}
	}
	return seq
}

// codeWord packs seq left-aligned, 2 bits per symbol, the way the decoder
// accumulates it.
func codeWord(seq []Symbol) uint16 {
	var c uint16
	for i, s := range seq {
		c |= uint16(s) << (2 * i)
	}
	return c
}

// lookup returns the symbols written for r before its terminating End.
func lookup(r rune) ([]Symbol, bool) {
	if r < 0 || r >= rune(len(encodeLUT)) {
		return nil, false
	}
	seq := encodeLUT[r]
	return seq, seq != nil
}

// Supported reports whether r can be encoded. Lower-case letters are
// supported and fold to upper case.
func Supported(r rune) bool {
	_, ok := lookup(r)
	return ok
}

// Pattern returns the Dit/Dah symbols of r. The pattern of space is empty.
func Pattern(r rune) ([]Symbol, bool) {
	seq, ok := lookup(r)
	if !ok {
		return nil, false
	}
	out := make([]Symbol, 0, len(seq))
	for _, s := range seq {
		if s == Dit || s == Dah {
			out = append(out, s)
		}
	}
	return out, true
}

// CodeWord returns the value the decoder accumulates for r.
func CodeWord(r rune) (uint16, bool) {
	seq, ok := lookup(r)
	if !ok {
		return 0, false
	}
	return codeWord(seq), true
}

// Alphabet returns every supported upper-case character in table order.
func Alphabet() []rune {
	out := make([]rune, len(codes))
	for i, c := range codes {
		out[i] = rune(c.char)
	}
	return out
}

// FormatPattern renders seq as dots and dashes.
func FormatPattern(seq []Symbol) string {
	var b strings.Builder
	b.Grow(len(seq))
	for _, s := range seq {
		switch s {
		case Dit:
			b.WriteByte('.')
		case Dah:
			b.WriteByte('-')
		}
	}
	return b.String()
}
