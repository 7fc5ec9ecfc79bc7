package morse

// Encoder packs Morse text into 2-bit symbols, four per byte. An Encoder
// only carries options, so one value may be shared between goroutines.
type Encoder struct {
	stop bool
}

type EncoderOption func(e *Encoder)

// WithStopMarker makes the Encoder terminate the message with a single Stop
// symbol. Without it a decoder cannot tell zero padding in the last byte from
// trailing spaces.
func WithStopMarker() EncoderOption {
	return func(e *Encoder) {
		e.stop = true
	}
}

// NewEncoder returns a new [Encoder].
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := new(Encoder)

	for _, opt := range opts {
		opt(e)
	}

	return e
}

var defaultEncoder = NewEncoder()

// Encode packs text with the default [Encoder].
func Encode(text string) ([]byte, error) {
	return defaultEncoder.Encode(text)
}

// Encode packs text. Lower-case letters are folded to upper case; any other
// character outside the table fails with an [*UnsupportedCharacterError] and
// no output.
func (e *Encoder) Encode(text string) ([]byte, error) {
	out, err := e.AppendEncode(make([]byte, 0, MaxEncodedLen(len(text))), text)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AppendEncode appends the packed form of text to dst, starting on a fresh
// byte. On error dst is returned unextended.
func (e *Encoder) AppendEncode(dst []byte, text string) ([]byte, error) {
	p := packer{buf: dst}

	for i, r := range text {
		seq, ok := lookup(r)
		if !ok {
			return dst, &UnsupportedCharacterError{Char: r, Offset: i}
		}
		for _, s := range seq {
			p.put(s)
		}
		p.put(End)
	}

	if e.stop {
		p.put(Stop)
	}

	return p.buf, nil
}

type packer struct {
	buf   []byte
	place Place
}

func (p *packer) put(s Symbol) {
	if p.place == PlaceZero {
		p.buf = append(p.buf, 0)
	}
	last := len(p.buf) - 1
	p.buf[last] = p.place.Put(p.buf[last], s)
	p.place = p.place.Next()
}
