package fbtable

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// DictStringVector is the generated-style reader for:
//
//	table DictStringVector {
//	  len: i32;                     // slot 0
//	  naMask: NaMask;                // slot 1
//	  info: SimplePrimitiveVector;   // slot 2 (packed dictionary codes)
//	  dict: [string];                // slot 3
//	  codec: u8;                     // slot 4 (additive: compression of dict strings)
//	}
type DictStringVector struct {
	tab flatbuffers.Table
}

func (d *DictStringVector) Init(buf []byte, i flatbuffers.UOffsetT) {
	d.tab.Bytes = buf
	d.tab.Pos = i
}

func GetRootAsDictStringVector(buf []byte, offset flatbuffers.UOffsetT) *DictStringVector {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &DictStringVector{}
	x.Init(buf, n+offset)

	return x
}

// Len returns the declared logical row count.
func (d *DictStringVector) Len() int32 {
	o := d.tab.Offset(slotOffset(0))
	if o != 0 {
		return d.tab.GetInt32(o + d.tab.Pos)
	}

	return 0
}

func (d *DictStringVector) NaMask(obj *NaMask) *NaMask {
	o := d.tab.Offset(slotOffset(1))
	if o != 0 {
		x := d.tab.Indirect(o + d.tab.Pos)
		if obj == nil {
			obj = new(NaMask)
		}
		obj.Init(d.tab.Bytes, x)

		return obj
	}

	return nil
}

// Info resolves the nested packed-code vector, reusing obj if non-nil.
func (d *DictStringVector) Info(obj *SimplePrimitiveVector) *SimplePrimitiveVector {
	o := d.tab.Offset(slotOffset(2))
	if o != 0 {
		x := d.tab.Indirect(o + d.tab.Pos)
		if obj == nil {
			obj = new(SimplePrimitiveVector)
		}
		obj.Init(d.tab.Bytes, x)

		return obj
	}

	return nil
}

// Dict returns dictionary entry j (allocating a Go string). Use DictBytes
// for a zero-copy []byte view of the same entry.
func (d *DictStringVector) Dict(j int) string {
	o := d.tab.Offset(slotOffset(3))
	if o != 0 {
		a := d.tab.Vector(o)
		a += flatbuffers.UOffsetT(j) * 4

		return string(d.tab.ByteVector(a))
	}

	return ""
}

// DictBytes returns a zero-copy view of dictionary entry j's UTF-8 bytes.
func (d *DictStringVector) DictBytes(j int) []byte {
	o := d.tab.Offset(slotOffset(3))
	if o != 0 {
		a := d.tab.Vector(o)
		a += flatbuffers.UOffsetT(j) * 4

		return d.tab.ByteVector(a)
	}

	return nil
}

// DictLength returns the number of distinct dictionary entries.
func (d *DictStringVector) DictLength() int {
	o := d.tab.Offset(slotOffset(3))
	if o != 0 {
		return d.tab.VectorLen(o)
	}

	return 0
}

// Codec returns the compression applied to each dictionary entry's bytes
// (0 if the slot is absent, i.e. uncompressed).
func (d *DictStringVector) Codec() byte {
	o := d.tab.Offset(slotOffset(4))
	if o != 0 {
		return d.tab.GetByte(o + d.tab.Pos)
	}

	return 0
}

func DictStringVectorStart(b *flatbuffers.Builder) {
	b.StartObject(5)
}

func DictStringVectorAddLen(b *flatbuffers.Builder, length int32) {
	b.PrependInt32Slot(0, length, 0)
}

func DictStringVectorAddNaMask(b *flatbuffers.Builder, naMask flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, naMask, 0)
}

func DictStringVectorAddInfo(b *flatbuffers.Builder, info flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, info, 0)
}

func DictStringVectorAddDict(b *flatbuffers.Builder, dict flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(3, dict, 0)
}

func DictStringVectorStartDictVector(b *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return b.StartVector(4, numElems, 4)
}

func DictStringVectorAddCodec(b *flatbuffers.Builder, codec byte) {
	b.PrependByteSlot(4, codec, 0)
}

func DictStringVectorEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}
