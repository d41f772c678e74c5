package encoding

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/vecio/colvec/fbtable"
	"github.com/vecio/colvec/mask"
	"github.com/vecio/colvec/wire"
)

// EncodeSimplePrimitive builds a SIMPLE/PRIMITIVE (or SIMPLE/BOOL) blob:
// values bit-packed at nbits through a PackedEncoder, plus the column's
// resolved NA mask. Callers have already selected nbits (nbits.ForZeroExtendedIntRange
// for integers, 64/32 for the natural float widths, 1 for bool) and
// converted each value to its raw uint64 bit pattern. values must carry
// exactly length entries; missing positions (per na) may hold any
// placeholder bits since readers never consult them.
func EncodeSimplePrimitive(sub wire.SubType, length int, nbits int, values []uint64, na mask.Variant) []byte {
	b := flatbuffers.NewBuilder(defaultBuilderSize)

	enc := NewPackedEncoder(littleEndian, nbits)
	enc.WriteSlice(values)
	dataVec := b.CreateByteVector(enc.Bytes())
	enc.Finish()

	naMask := buildNaMask(b, na)

	fbtable.SimplePrimitiveVectorStart(b)
	fbtable.SimplePrimitiveVectorAddLen(b, int32(length))
	fbtable.SimplePrimitiveVectorAddNaMask(b, naMask)
	fbtable.SimplePrimitiveVectorAddNBits(b, byte(nbits))
	fbtable.SimplePrimitiveVectorAddData(b, dataVec)
	off := fbtable.SimplePrimitiveVectorEnd(b)
	b.Finish(off)

	return append(wire.AppendHeader(nil, wire.Simple, sub, 0), b.FinishedBytes()...)
}
