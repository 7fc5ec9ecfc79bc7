// Package morse translates Morse text to and from a dense binary form that
// packs every symbol into 2 bits, four symbols per byte.
package morse

// Symbol is a single 2-bit Morse symbol as stored in a packed buffer.
//
// End doubles as the zero padding left in the unused slots of the final byte.
type Symbol uint8

const (
	End  Symbol = 0 // end of character; also padding
	Stop Symbol = 1 // optional end of message, see WithStopMarker
	Dit  Symbol = 2 // short tap
	Dah  Symbol = 3 // long tap
)

func (s Symbol) String() string {
	switch s {
	case Dit:
		return "."
	case Dah:
		return "-"
	case Stop:
		return "Stop"
	default:
		return "End"
	}
}

// Place is the cursor over the four 2-bit slots of the current byte,
// least-significant slot first.
type Place uint8

const (
	PlaceZero  Place = 0 // default
	PlaceOne   Place = 1
	PlaceTwo   Place = 2
	PlaceThree Place = 3
)

// Next returns the following slot. Wrapping back to PlaceZero means a byte
// boundary was crossed.
func (p Place) Next() Place {
	return (p + 1) & 3
}

func (p Place) shift() uint {
	return uint(p&3) * 2
}

// Put ORs s into the slot of b addressed by p. The slot must be zero.
func (p Place) Put(b byte, s Symbol) byte {
	return b | byte(s&3)<<p.shift()
}

// Get extracts the symbol stored in the slot of b addressed by p.
func (p Place) Get(b byte) Symbol {
	return Symbol(b>>p.shift()) & 3
}
