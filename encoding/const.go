package encoding

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/vecio/colvec/fbtable"
	"github.com/vecio/colvec/mask"
	"github.com/vecio/colvec/wire"
)

// defaultBuilderSize is the initial flatbuffers.Builder capacity used
// across the package's table builders; small payloads never grow it,
// large ones amortize the same way pool.ByteBuffer does.
const defaultBuilderSize = 256

// EncodeConstPrimitive builds a CONST/PRIMITIVE blob: the single packed
// value stored at index 0 of a SimplePrimitiveVector's data region, plus
// the column's resolved NA mask. len still carries the declared row
// count, since no dedicated const-primitive table exists in the fixed
// wire schema.
func EncodeConstPrimitive(sub wire.SubType, length int, nbits int, value uint64, na mask.Variant) []byte {
	b := flatbuffers.NewBuilder(defaultBuilderSize)

	enc := NewPackedEncoder(littleEndian, nbits)
	enc.Write(value)
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

	return append(wire.AppendHeader(nil, wire.Const, sub, 0), b.FinishedBytes()...)
}

// EncodeConstString builds a CONST/STRING blob holding one repeated
// string value across length logical rows.
func EncodeConstString(length int, value string, na mask.Variant) []byte {
	b := flatbuffers.NewBuilder(defaultBuilderSize)

	strOff := b.CreateString(value)
	naMask := buildNaMask(b, na)

	fbtable.ConstStringVectorStart(b)
	fbtable.ConstStringVectorAddLen(b, int32(length))
	fbtable.ConstStringVectorAddNaMask(b, naMask)
	fbtable.ConstStringVectorAddStr(b, strOff)
	off := fbtable.ConstStringVectorEnd(b)
	b.Finish(off)

	return append(wire.AppendHeader(nil, wire.Const, wire.SubString, 0), b.FinishedBytes()...)
}
