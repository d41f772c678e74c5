package fbtable

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// NaMask is the generated-style reader for the NaMask table:
//
//	table NaMask {
//	  maskType: u8;   // slot 0
//	  bitMask: [u64]; // slot 1
//	}
type NaMask struct {
	tab flatbuffers.Table
}

// Init binds the reader to buf at absolute table position i.
func (n *NaMask) Init(buf []byte, i flatbuffers.UOffsetT) {
	n.tab.Bytes = buf
	n.tab.Pos = i
}

// Table exposes the underlying flatbuffers.Table for callers that need
// the raw position (e.g. to compute Indirect offsets for nested reads).
func (n *NaMask) Table() flatbuffers.Table {
	return n.tab
}

// MaskType returns the mask variant tag (MaskTypeAllZeroes/AllOnes/Bitmap).
// Absent defaults to MaskTypeAllZeroes, matching an all-present column.
func (n *NaMask) MaskType() byte {
	o := n.tab.Offset(slotOffset(0))
	if o != 0 {
		return n.tab.GetByte(o + n.tab.Pos)
	}

	return MaskTypeAllZeroes
}

// BitMask returns word j of the packed bitmap (only meaningful when
// MaskType() == MaskTypeBitmap).
func (n *NaMask) BitMask(j int) uint64 {
	o := n.tab.Offset(slotOffset(1))
	if o != 0 {
		a := n.tab.Vector(o)
		return n.tab.GetUint64(a + flatbuffers.UOffsetT(j*8))
	}

	return 0
}

// BitMaskLength returns the number of packed u64 words present.
func (n *NaMask) BitMaskLength() int {
	o := n.tab.Offset(slotOffset(1))
	if o != 0 {
		return n.tab.VectorLen(o)
	}

	return 0
}

// NaMaskStart begins building a NaMask table.
func NaMaskStart(b *flatbuffers.Builder) {
	b.StartObject(2)
}

// NaMaskAddMaskType sets slot 0.
func NaMaskAddMaskType(b *flatbuffers.Builder, maskType byte) {
	b.PrependByteSlot(0, maskType, MaskTypeAllZeroes)
}

// NaMaskAddBitMask sets slot 1 to a previously-built [u64] vector offset.
func NaMaskAddBitMask(b *flatbuffers.Builder, bitMask flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, bitMask, 0)
}

// NaMaskStartBitMaskVector starts the [u64] bitMask vector; callers must
// PrependUint64 numElems times in reverse order, then call b.EndVector.
func NaMaskStartBitMaskVector(b *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return b.StartVector(8, numElems, 8)
}

// NaMaskEnd finishes the table and returns its offset.
func NaMaskEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}
