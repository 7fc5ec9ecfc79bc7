package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceNext(t *testing.T) {
	p := PlaceZero
	seen := []Place{p}
	for range 4 {
		p = p.Next()
		seen = append(seen, p)
	}
	require.Equal(t, []Place{PlaceZero, PlaceOne, PlaceTwo, PlaceThree, PlaceZero}, seen)
}

func TestPlacePutGet(t *testing.T) {
	places := []Place{PlaceZero, PlaceOne, PlaceTwo, PlaceThree}
	symbols := []Symbol{End, Stop, Dit, Dah}

	for _, p := range places {
		for _, s := range symbols {
			b := p.Put(0, s)
			assert.Equal(t, byte(s)<<(2*p), b, "place %d symbol %s", p, s)
			assert.Equal(t, s, p.Get(b))

			for _, other := range places {
				if other != p {
					assert.Equal(t, End, other.Get(b), "slot %d disturbed by write to %d", other, p)
				}
			}
		}
	}

	// SOS's first byte: . . . End
	var b byte
	for i, s := range []Symbol{Dit, Dit, Dit, End} {
		b = Place(i).Put(b, s)
	}
	require.Equal(t, byte(0x2A), b)
}

func TestSymbolString(t *testing.T) {
	assert.Equal(t, ".", Dit.String())
	assert.Equal(t, "-", Dah.String())
	assert.Equal(t, "End", End.String())
	assert.Equal(t, "Stop", Stop.String())
}
