// Package wire defines the 4-byte blob header and the fixed enumerations
// that identify a column's major and sub encoding.
//
// A blob is header || payload, where the header packs three fields into
// 4 little-endian bytes:
//
//	byte 0: major type
//	byte 1: sub type
//	byte 2-3: aux (uint16, little-endian)
//
// The layout and the meaning of aux depend on MajorType exactly as
// specified by the wire format: for Empty, aux carries the declared
// logical length; for every other major type it is reserved and zero.
package wire

import (
	"encoding/binary"

	"github.com/vecio/colvec/errs"
)

// MajorType identifies the top-level payload shape of a blob.
type MajorType uint8

const (
	Empty  MajorType = 0
	Simple MajorType = 1
	Dict   MajorType = 2
	Const  MajorType = 3
)

func (m MajorType) String() string {
	switch m {
	case Empty:
		return "Empty"
	case Simple:
		return "Simple"
	case Dict:
		return "Dict"
	case Const:
		return "Const"
	default:
		return "Unknown"
	}
}

func (m MajorType) valid() bool {
	return m <= Const
}

// SubType interprets differently depending on MajorType: PRIMITIVE/STRING/BOOL
// for Simple, STRING for Dict, STRING/PRIMITIVE for Const. Empty ignores it.
type SubType uint8

const (
	SubPrimitive SubType = 0
	SubString    SubType = 1
	SubBool      SubType = 2
)

func (s SubType) String() string {
	switch s {
	case SubPrimitive:
		return "Primitive"
	case SubString:
		return "String"
	case SubBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// HeaderSize is the fixed byte size of the blob header.
const HeaderSize = 4

// Header is the decoded form of the 4-byte blob prefix.
type Header struct {
	Major MajorType
	Sub   SubType
	Aux   uint16
}

// Encode packs (major, sub, aux) into the 4-byte little-endian header.
// Round-trip law: Decode(Encode(m, s, a)) == Header{m, s, a}.
func Encode(major MajorType, sub SubType, aux uint16) [HeaderSize]byte {
	var b [HeaderSize]byte
	b[0] = byte(major)
	b[1] = byte(sub)
	binary.LittleEndian.PutUint16(b[2:4], aux)

	return b
}

// AppendHeader appends an encoded header to buf, growing it as needed, and
// returns the extended slice. Mirrors the common AppendByteOrder idiom
// of building buffers by append rather than fixed-size scratch arrays.
func AppendHeader(buf []byte, major MajorType, sub SubType, aux uint16) []byte {
	h := Encode(major, sub, aux)
	return append(buf, h[:]...)
}

// Decode parses the 4-byte header at the start of data.
//
// Returns ErrMalformedHeader if data is shorter than HeaderSize or the
// major type code is outside the fixed closed set.
func Decode(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrMalformedHeader
	}

	major := MajorType(data[0])
	if !major.valid() {
		return Header{}, errs.ErrMalformedHeader
	}

	return Header{
		Major: major,
		Sub:   SubType(data[1]),
		Aux:   binary.LittleEndian.Uint16(data[2:4]),
	}, nil
}
