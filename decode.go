package morse

// Decode unpacks a buffer produced by [Encode] back into upper-case text.
//
// Unless the buffer was written with [WithStopMarker], zero padding in the
// last byte decodes as trailing spaces: one space for every two unused slots,
// rounded up. A Stop symbol is only accepted as the last non-zero slot of the
// buffer; anywhere else it is reported as a [*MalformedCodeError].
func Decode(src []byte) (string, error) {
	out, err := AppendDecode(make([]byte, 0, MaxDecodedLen(len(src))), src)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// AppendDecode decodes src and appends the text to dst. On error it returns
// nil and an [*MalformedCodeError]; src is never modified.
func AppendDecode(dst, src []byte) ([]byte, error) {
	u := unpacker{src: src}

	for u.pos < len(u.src) {
		c, stop, err := u.char()
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
		dst = append(dst, c)
	}

	return dst, nil
}
