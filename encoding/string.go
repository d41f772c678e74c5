package encoding

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/vecio/colvec/compress"
	"github.com/vecio/colvec/fbtable"
	"github.com/vecio/colvec/mask"
	"github.com/vecio/colvec/wire"
)

// EncodeSimpleString builds a SIMPLE/STRING blob: a flatbuffers string
// vector plus the column's NA mask. When codec is non-zero, each
// entry's bytes are compressed independently before being embedded, so
// flatbuffers' per-element offset addressing stays intact; a missing
// position still contributes an (empty) string entry to the vector to
// keep indices aligned with na.
func EncodeSimpleString(values []string, na mask.Variant, codec wire.CompressionType) ([]byte, error) {
	b := flatbuffers.NewBuilder(defaultBuilderSize)

	entries, err := compressEntries(values, codec)
	if err != nil {
		return nil, err
	}

	offs := make([]flatbuffers.UOffsetT, len(entries))
	for i, e := range entries {
		offs[i] = b.CreateByteString(e)
	}

	fbtable.SimpleStringVectorStartDataVector(b, len(offs))
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	dataVec := b.EndVector(len(offs))

	naMask := buildNaMask(b, na)

	fbtable.SimpleStringVectorStart(b)
	fbtable.SimpleStringVectorAddDataLen(b, int32(len(values)))
	fbtable.SimpleStringVectorAddNaMask(b, naMask)
	fbtable.SimpleStringVectorAddData(b, dataVec)
	if codec != 0 {
		fbtable.SimpleStringVectorAddCodec(b, byte(codec))
	}
	off := fbtable.SimpleStringVectorEnd(b)
	b.Finish(off)

	return append(wire.AppendHeader(nil, wire.Simple, wire.SubString, 0), b.FinishedBytes()...), nil
}

// compressEntries returns values re-encoded to bytes, each independently
// run through codec's Compressor when codec names a real algorithm.
func compressEntries(values []string, codec wire.CompressionType) ([][]byte, error) {
	entries := make([][]byte, len(values))
	if codec == 0 || codec == wire.CompressionNone {
		for i, v := range values {
			entries[i] = []byte(v)
		}

		return entries, nil
	}

	c, err := compress.GetCodec(codec)
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		out, err := c.Compress([]byte(v))
		if err != nil {
			return nil, err
		}
		entries[i] = out
	}

	return entries, nil
}
