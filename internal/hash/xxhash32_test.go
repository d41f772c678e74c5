package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXXHash32Deterministic(t *testing.T) {
	data := []byte("a columnar vector encoding test string")
	require.Equal(t, XXHash32(data, 0x9747B28C), XXHash32(data, 0x9747B28C))
}

func TestXXHash32EmptyInput(t *testing.T) {
	require.Equal(t, XXHash32(nil, 1), XXHash32([]byte{}, 1))
}

func TestXXHash32VariesWithSeed(t *testing.T) {
	data := []byte("distinct seeds should usually diverge")
	require.NotEqual(t, XXHash32(data, 1), XXHash32(data, 2))
}

func TestXXHash32VariesWithInput(t *testing.T) {
	require.NotEqual(t, XXHash32([]byte("alpha"), 0x9747B28C), XXHash32([]byte("beta"), 0x9747B28C))
}

func TestXXHash32HandlesAllLengthClasses(t *testing.T) {
	// Exercise the tail loop (<4 bytes), the 4-byte stripe loop, and the
	// 16-byte-block accumulator path in one pass.
	for n := 0; n < 40; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}
		// Must not panic, and must be stable across repeated calls.
		h1 := XXHash32(data, 7)
		h2 := XXHash32(data, 7)
		require.Equal(t, h1, h2)
	}
}
