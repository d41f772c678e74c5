package fbtable

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// SimpleStringVector is the generated-style reader for:
//
//	table SimpleStringVector {
//	  dataLen: i32;    // slot 0
//	  naMask: NaMask;  // slot 1
//	  data: [string];  // slot 2
//	  codec: u8;       // slot 3 (additive: compression of each stored string)
//	}
type SimpleStringVector struct {
	tab flatbuffers.Table
}

func (s *SimpleStringVector) Init(buf []byte, i flatbuffers.UOffsetT) {
	s.tab.Bytes = buf
	s.tab.Pos = i
}

func GetRootAsSimpleStringVector(buf []byte, offset flatbuffers.UOffsetT) *SimpleStringVector {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &SimpleStringVector{}
	x.Init(buf, n+offset)

	return x
}

// DataLen returns the declared logical row count.
func (s *SimpleStringVector) DataLen() int32 {
	o := s.tab.Offset(slotOffset(0))
	if o != 0 {
		return s.tab.GetInt32(o + s.tab.Pos)
	}

	return 0
}

func (s *SimpleStringVector) NaMask(obj *NaMask) *NaMask {
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

// Data returns string element j (allocating a Go string). Use DataBytes
// for a zero-copy []byte view of the same element.
func (s *SimpleStringVector) Data(j int) string {
	o := s.tab.Offset(slotOffset(2))
	if o != 0 {
		a := s.tab.Vector(o)
		a += flatbuffers.UOffsetT(j) * 4

		return string(s.tab.ByteVector(a))
	}

	return ""
}

// DataBytes returns a zero-copy view of string element j's UTF-8 bytes,
// backed directly by the table's buffer.
func (s *SimpleStringVector) DataBytes(j int) []byte {
	o := s.tab.Offset(slotOffset(2))
	if o != 0 {
		a := s.tab.Vector(o)
		a += flatbuffers.UOffsetT(j) * 4

		return s.tab.ByteVector(a)
	}

	return nil
}

func (s *SimpleStringVector) DataLength() int {
	o := s.tab.Offset(slotOffset(2))
	if o != 0 {
		return s.tab.VectorLen(o)
	}

	return 0
}

// Codec returns the compression applied to each stored string's bytes
// (0 if the slot is absent, i.e. uncompressed).
func (s *SimpleStringVector) Codec() byte {
	o := s.tab.Offset(slotOffset(3))
	if o != 0 {
		return s.tab.GetByte(o + s.tab.Pos)
	}

	return 0
}

func SimpleStringVectorStart(b *flatbuffers.Builder) {
	b.StartObject(4)
}

func SimpleStringVectorAddDataLen(b *flatbuffers.Builder, length int32) {
	b.PrependInt32Slot(0, length, 0)
}

func SimpleStringVectorAddNaMask(b *flatbuffers.Builder, naMask flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, naMask, 0)
}

func SimpleStringVectorAddData(b *flatbuffers.Builder, data flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, data, 0)
}

func SimpleStringVectorStartDataVector(b *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return b.StartVector(4, numElems, 4)
}

func SimpleStringVectorAddCodec(b *flatbuffers.Builder, codec byte) {
	b.PrependByteSlot(3, codec, 0)
}

func SimpleStringVectorEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}
