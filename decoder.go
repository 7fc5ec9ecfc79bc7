package morse

// unpacker reads symbols back out of a packed buffer.
type unpacker struct {
	src   []byte
	pos   int
	place Place
}

func (u *unpacker) next() (Symbol, bool) {
	if u.pos >= len(u.src) {
		return End, false
	}

	s := u.place.Get(u.src[u.pos])

	u.place = u.place.Next()
	if u.place == PlaceZero {
		u.pos++
	}
	return s, true
}

// drained reports whether everything after the symbol just read is zero
// padding in the final byte.
func (u *unpacker) drained() bool {
	if u.place == PlaceZero {
		return u.pos == len(u.src)
	}
	if u.pos != len(u.src)-1 {
		return false
	}
	for p := u.place; ; p = p.Next() {
		if p.Get(u.src[u.pos]) != End {
			return false
		}
		if p == PlaceThree {
			return true
		}
	}
}

// char decodes one character. An End terminates the character only once a
// symbol has been accumulated; a leading End is taken as data, which is how a
// word gap (End End) decodes to code word 0.
func (u *unpacker) char() (c byte, stop bool, err error) {
	var (
		code  uint16
		shift uint
		at    = u.pos
	)

	for {
		s, ok := u.next()
		if !ok {
			// Trailing padding, or a word gap cut short by the end of input.
			if code != 0 {
				return 0, false, &MalformedCodeError{Code: code, Offset: at, Truncated: true}
			}
			return ' ', false, nil
		}

		switch {
		case s == Stop && shift == 0:
			if !u.drained() {
				return 0, false, &MalformedCodeError{Code: uint16(Stop), Offset: at}
			}
			return 0, true, nil
		case s == Stop:
			return 0, false, &MalformedCodeError{Code: code, Offset: at}
		case s == End && shift != 0:
			if code >= 1<<maxCodeBits || decodeLUT[code] == 0 {
				return 0, false, &MalformedCodeError{Code: code, Offset: at}
			}
			return decodeLUT[code], false, nil
		case shift >= 16:
			return 0, false, &MalformedCodeError{Code: code, Offset: at}
		}

		code |= uint16(s) << shift
		shift += 2
	}
}
