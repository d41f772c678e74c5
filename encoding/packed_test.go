package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackedEncoderWriteSliceWidths(t *testing.T) {
	for _, nbits := range []int{8, 16, 32, 64} {
		enc := NewPackedEncoder(littleEndian, nbits)
		enc.WriteSlice([]uint64{1, 2, 3})
		require.Equal(t, 3, enc.Len())
		require.Equal(t, 3*(nbits/8), enc.Size())
		enc.Finish()
	}
}

func TestPackedEncoderBitWidthPacksEightPerByte(t *testing.T) {
	enc := NewPackedEncoder(littleEndian, 1)
	for _, v := range []uint64{1, 0, 1, 1, 0, 0, 1, 0, 1} {
		enc.Write(v)
	}
	require.Equal(t, 9, enc.Len())
	// 9 bits span 2 bytes once the partial final byte is flushed.
	require.Equal(t, 2, enc.Size())
	enc.Finish()
}

func TestPackedEncoderWriteAmortizesAcrossManyValues(t *testing.T) {
	enc := NewPackedEncoder(littleEndian, 32)
	for i := 0; i < 1000; i++ {
		enc.Write(uint64(i))
	}
	require.Equal(t, 1000, enc.Len())
	require.Equal(t, 4000, enc.Size())
	enc.Finish()
}

func TestPackedEncoderFinishResetsState(t *testing.T) {
	enc := NewPackedEncoder(littleEndian, 8)
	enc.Write(1)
	enc.Finish()
	require.Equal(t, 0, enc.Len())
	require.Panics(t, func() { enc.Bytes() })
}
