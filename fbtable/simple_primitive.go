package fbtable

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// SimplePrimitiveVector is the generated-style reader for:
//
//	table SimplePrimitiveVector {
//	  len: i32;          // slot 0
//	  naMask: NaMask;     // slot 1
//	  nbits: u8;          // slot 2
//	  data: [u8];         // slot 3
//	}
type SimplePrimitiveVector struct {
	tab flatbuffers.Table
}

// Init binds the reader to buf at absolute table position i.
func (s *SimplePrimitiveVector) Init(buf []byte, i flatbuffers.UOffsetT) {
	s.tab.Bytes = buf
	s.tab.Pos = i
}

// GetRootAsSimplePrimitiveVector resolves the root object stored at the
// u32 offset prefix located at buf[offset:].
func GetRootAsSimplePrimitiveVector(buf []byte, offset flatbuffers.UOffsetT) *SimplePrimitiveVector {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &SimplePrimitiveVector{}
	x.Init(buf, n+offset)

	return x
}

// Len returns the declared logical row count.
func (s *SimplePrimitiveVector) Len() int32 {
	o := s.tab.Offset(slotOffset(0))
	if o != 0 {
		return s.tab.GetInt32(o + s.tab.Pos)
	}

	return 0
}

// NaMask resolves the nested NA mask table, reusing obj if non-nil.
func (s *SimplePrimitiveVector) NaMask(obj *NaMask) *NaMask {
	o := s.tab.Offset(slotOffset(1))
	if o != 0 {
		x := s.tab.Indirect(o + s.tab.Pos)
		if obj == nil {
			obj = new(NaMask)
		}
		obj.Init(s.tab.Bytes, x)

		return obj
	}

	return nil
}

// NBits returns the packed-value bit width.
func (s *SimplePrimitiveVector) NBits() byte {
	o := s.tab.Offset(slotOffset(2))
	if o != 0 {
		return s.tab.GetByte(o + s.tab.Pos)
	}

	return 0
}

// Data returns the raw packed-value byte region, or nil if absent.
func (s *SimplePrimitiveVector) Data() []byte {
	o := s.tab.Offset(slotOffset(3))
	if o != 0 {
		a := s.tab.Vector(o)
		length := s.tab.VectorLen(o)

		return s.tab.Bytes[a : a+flatbuffers.UOffsetT(length)]
	}

	return nil
}

// SimplePrimitiveVectorStart begins building the table.
func SimplePrimitiveVectorStart(b *flatbuffers.Builder) {
	b.StartObject(4)
}

func SimplePrimitiveVectorAddLen(b *flatbuffers.Builder, length int32) {
	b.PrependInt32Slot(0, length, 0)
}

func SimplePrimitiveVectorAddNaMask(b *flatbuffers.Builder, naMask flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, naMask, 0)
}

func SimplePrimitiveVectorAddNBits(b *flatbuffers.Builder, nbits byte) {
	b.PrependByteSlot(2, nbits, 0)
}

func SimplePrimitiveVectorAddData(b *flatbuffers.Builder, data flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(3, data, 0)
}

func SimplePrimitiveVectorEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}
