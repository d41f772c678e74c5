// Package endian provides the byte-order engine and bit-packed load/store
// helpers colvec uses to read and write the raw packed-value region of a
// SimplePrimitiveVector or a dictionary's codes vector.
//
// The wire format is little-endian throughout, so every public encoder and
// decoder in this module uses GetLittleEndianEngine(). The EndianEngine
// abstraction itself stays byte-order-generic, so the bit-packing helpers
// below can be exercised against both orders in tests without duplicating
// logic.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into one interface, satisfied directly by binary.LittleEndian and
// binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. The wire format
// mandates this engine for every on-disk byte.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine, used only by tests
// that exercise the bit-packing helpers independently of the wire format.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ReadPacked reads one nbits-wide unsigned value at logical index i from a
// packed byte region, per the wire format's bit-packing rule: nbits ∈
// {8,16,32,64} is a direct aligned load; nbits == 1 reads bit (i & 7) of
// byte (i >> 3). The caller is responsible for bounds-checking i against
// the vector's declared length before calling.
func ReadPacked(engine EndianEngine, data []byte, i int, nbits int) uint64 {
	switch nbits {
	case 1:
		byteIdx := i >> 3
		bit := uint(i & 7)
		return uint64((data[byteIdx] >> bit) & 1)
	case 8:
		return uint64(data[i])
	case 16:
		return uint64(engine.Uint16(data[i*2:]))
	case 32:
		return uint64(engine.Uint32(data[i*4:]))
	case 64:
		return engine.Uint64(data[i*8:])
	default:
		panic("endian: unsupported nbits")
	}
}

// WritePacked appends one nbits-wide value (nbits ∈ {8,16,32,64}) to buf,
// growing it as needed, and returns the extended slice. 1-bit values are
// accumulated with BitWriter instead, since they pack 8 to a byte.
func WritePacked(engine EndianEngine, buf []byte, val uint64, nbits int) []byte {
	switch nbits {
	case 8:
		return append(buf, byte(val))
	case 16:
		return engine.AppendUint16(buf, uint16(val))
	case 32:
		return engine.AppendUint32(buf, uint32(val))
	case 64:
		return engine.AppendUint64(buf, val)
	default:
		panic("endian: unsupported nbits for WritePacked")
	}
}

// BitWriter accumulates 1-bit values into a little-endian bit-packed byte
// buffer, padding the final byte with zero bits, as the wire format
// requires for nbits == 1 packed regions.
type BitWriter struct {
	buf     []byte
	cur     byte
	pending uint
	written int
}

// NewBitWriter creates a BitWriter that appends bits starting at the next
// byte boundary after buf's current length.
func NewBitWriter(buf []byte) *BitWriter {
	return &BitWriter{buf: buf}
}

// WriteBit appends a single bit.
func (w *BitWriter) WriteBit(set bool) {
	if set {
		w.cur |= 1 << w.pending
	}
	w.pending++
	w.written++

	if w.pending == 8 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.pending = 0
	}
}

// Bytes flushes any partial final byte (zero-padded) and returns the
// accumulated buffer. The BitWriter must not be reused after calling Bytes.
func (w *BitWriter) Bytes() []byte {
	if w.pending > 0 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.pending = 0
	}

	return w.buf
}

// Len returns the number of bits written so far.
func (w *BitWriter) Len() int {
	return w.written
}
