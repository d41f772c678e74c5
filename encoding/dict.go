package encoding

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/vecio/colvec/compress"
	"github.com/vecio/colvec/fbtable"
	"github.com/vecio/colvec/mask"
	"github.com/vecio/colvec/nbits"
	"github.com/vecio/colvec/wire"
)

// EncodeDictString builds a DICT/STRING blob: a deduplicated string
// dictionary plus a packed-code column indexing into it, sized at
// nbits.ForDictSize(len(dict)). codes
// must carry exactly length entries and index into dict; na marks
// missing logical positions (codes[i] is then never read).
func EncodeDictString(length int, dict []string, codes []uint64, na mask.Variant, codec wire.CompressionType) ([]byte, error) {
	b := flatbuffers.NewBuilder(defaultBuilderSize)

	entries, err := compressEntries(dict, codec)
	if err != nil {
		return nil, err
	}

	dictOffs := make([]flatbuffers.UOffsetT, len(entries))
	for i, e := range entries {
		dictOffs[i] = b.CreateByteString(e)
	}

	fbtable.DictStringVectorStartDictVector(b, len(dictOffs))
	for i := len(dictOffs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(dictOffs[i])
	}
	dictVec := b.EndVector(len(dictOffs))

	codeWidth := nbits.ForDictSize(len(dict))
	codesEnc := NewPackedEncoder(littleEndian, codeWidth)
	codesEnc.WriteSlice(codes)
	codesVec := b.CreateByteVector(codesEnc.Bytes())
	codesEnc.Finish()

	codesMask := buildNaMask(b, presentCodesVariant)

	fbtable.SimplePrimitiveVectorStart(b)
	fbtable.SimplePrimitiveVectorAddLen(b, int32(length))
	fbtable.SimplePrimitiveVectorAddNaMask(b, codesMask)
	fbtable.SimplePrimitiveVectorAddNBits(b, byte(codeWidth))
	fbtable.SimplePrimitiveVectorAddData(b, codesVec)
	infoOff := fbtable.SimplePrimitiveVectorEnd(b)

	naMask := buildNaMask(b, na)

	fbtable.DictStringVectorStart(b)
	fbtable.DictStringVectorAddLen(b, int32(length))
	fbtable.DictStringVectorAddNaMask(b, naMask)
	fbtable.DictStringVectorAddInfo(b, infoOff)
	fbtable.DictStringVectorAddDict(b, dictVec)
	if codec != 0 {
		fbtable.DictStringVectorAddCodec(b, byte(codec))
	}
	off := fbtable.DictStringVectorEnd(b)
	b.Finish(off)

	return append(wire.AppendHeader(nil, wire.Dict, wire.SubString, 0), b.FinishedBytes()...), nil
}

// presentCodesVariant marks the nested codes table as fully present:
// the codes column's own NA mask is never consulted by dictHandle,
// which defers entirely to the outer DictStringVector's na mask, but
// the nested SimplePrimitiveVector table still requires a well-formed
// NaMask field.
var presentCodesVariant = mask.Variant{Type: fbtable.MaskTypeAllZeroes}
