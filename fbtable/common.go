package fbtable

import flatbuffers "github.com/google/flatbuffers/go"

// slotOffset converts a fixed wire-format field slot number into the
// vtable byte offset flatbuffers.Table.Offset expects: slot 0 is always
// at byte 4, each subsequent slot adds 2 bytes (one VOffsetT).
func slotOffset(slot int) flatbuffers.VOffsetT {
	return flatbuffers.VOffsetT(4 + 2*slot)
}

// NA mask type tags, matching the wire format's NaMask.maskType field.
const (
	MaskTypeAllZeroes byte = 0
	MaskTypeAllOnes   byte = 1
	MaskTypeBitmap    byte = 2
)
