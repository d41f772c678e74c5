package encoding

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/vecio/colvec/fbtable"
	"github.com/vecio/colvec/mask"
)

// buildNaMask writes v's resolved variant as a NaMask table and returns
// its offset. Must be called before the enclosing payload table's
// StartObject, per flatbuffers' child-before-parent build order. The
// all-present variant writes no table and returns 0, so the payload's
// naMask field is omitted; readers treat an absent mask as all-present.
func buildNaMask(b *flatbuffers.Builder, v mask.Variant) flatbuffers.UOffsetT {
	if v.Type == fbtable.MaskTypeAllZeroes {
		return 0
	}

	var bitMaskOff flatbuffers.UOffsetT
	if v.Type == fbtable.MaskTypeBitmap {
		fbtable.NaMaskStartBitMaskVector(b, len(v.Words))
		for i := len(v.Words) - 1; i >= 0; i-- {
			b.PrependUint64(v.Words[i])
		}
		bitMaskOff = b.EndVector(len(v.Words))
	}

	fbtable.NaMaskStart(b)
	fbtable.NaMaskAddMaskType(b, v.Type)
	if v.Type == fbtable.MaskTypeBitmap {
		fbtable.NaMaskAddBitMask(b, bitMaskOff)
	}

	return fbtable.NaMaskEnd(b)
}
