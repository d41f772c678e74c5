package fbtable

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// ConstStringVector is the generated-style reader for:
//
//	table ConstStringVector {
//	  len: i32;        // slot 0
//	  naMask: NaMask;  // slot 1
//	  str: string;     // slot 2
//	}
type ConstStringVector struct {
	tab flatbuffers.Table
}

func (c *ConstStringVector) Init(buf []byte, i flatbuffers.UOffsetT) {
	c.tab.Bytes = buf
	c.tab.Pos = i
}

func GetRootAsConstStringVector(buf []byte, offset flatbuffers.UOffsetT) *ConstStringVector {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &ConstStringVector{}
	x.Init(buf, n+offset)

	return x
}

func (c *ConstStringVector) Len() int32 {
	o := c.tab.Offset(slotOffset(0))
	if o != 0 {
		return c.tab.GetInt32(o + c.tab.Pos)
	}

	return 0
}

func (c *ConstStringVector) NaMask(obj *NaMask) *NaMask {
	o := c.tab.Offset(slotOffset(1))
	if o != 0 {
		x := c.tab.Indirect(o + c.tab.Pos)
		if obj == nil {
			obj = new(NaMask)
		}
		obj.Init(c.tab.Bytes, x)

		return obj
	}

	return nil
}

// Str returns the single repeated value (allocating a Go string).
func (c *ConstStringVector) Str() string {
	o := c.tab.Offset(slotOffset(2))
	if o != 0 {
		return string(c.tab.ByteVector(o + c.tab.Pos))
	}

	return ""
}

// StrBytes returns a zero-copy view of the single repeated value.
func (c *ConstStringVector) StrBytes() []byte {
	o := c.tab.Offset(slotOffset(2))
	if o != 0 {
		return c.tab.ByteVector(o + c.tab.Pos)
	}

	return nil
}

func ConstStringVectorStart(b *flatbuffers.Builder) {
	b.StartObject(3)
}

func ConstStringVectorAddLen(b *flatbuffers.Builder, length int32) {
	b.PrependInt32Slot(0, length, 0)
}

func ConstStringVectorAddNaMask(b *flatbuffers.Builder, naMask flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, naMask, 0)
}

func ConstStringVectorAddStr(b *flatbuffers.Builder, str flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, str, 0)
}

func ConstStringVectorEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}
