package morse

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedCharacter = errors.New("unsupported character")
	ErrMalformedCode        = errors.New("malformed code word") // no table entry, or input ends mid-character
)

// UnsupportedCharacterError is returned when text contains a character
// outside the Morse table.
type UnsupportedCharacterError struct {
	Char   rune
	Offset int // byte offset in the input text
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("morse: unsupported character %q at offset %d", e.Char, e.Offset)
}

func (e *UnsupportedCharacterError) Unwrap() error {
	return ErrUnsupportedCharacter
}

// MalformedCodeError is returned when packed input does not decode to a
// table entry.
type MalformedCodeError struct {
	Code      uint16 // bits accumulated so far
	Offset    int    // index of the byte holding the character's first symbol
	Truncated bool   // input ended before the character was terminated
}

func (e *MalformedCodeError) Error() string {
	if e.Truncated {
		return fmt.Sprintf("morse: input ends inside character starting at byte %d (code word %#x)", e.Offset, e.Code)
	}
	return fmt.Sprintf("morse: malformed code word %#x at byte %d", e.Code, e.Offset)
}

func (e *MalformedCodeError) Unwrap() error {
	return ErrMalformedCode
}
