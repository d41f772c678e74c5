package encoding

import (
	"github.com/vecio/colvec/endian"
	"github.com/vecio/colvec/internal/pool"
)

// PackedEncoder accumulates uint64 words packed at a fixed bit width
// into a pooled byte buffer, using an amortized-growth strategy
// generalized from a fixed 8-byte stride to the wire format's nbits set
// {1, 8, 16, 32, 64}. nbits == 1 packs 8 values per byte instead of one
// value per stride.
type PackedEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	nbits  int
	count  int

	// bitCur/bitPending hold the in-progress byte for nbits == 1,
	// mirroring endian.BitWriter's accumulation without requiring a
	// second, un-pooled buffer.
	bitCur     byte
	bitPending uint
}

var _ ColumnarEncoder[uint64] = (*PackedEncoder)(nil)

// NewPackedEncoder creates an encoder that packs each written word into
// nbits bits. Callers choose nbits via nbits.ForZeroExtendedIntRange /
// nbits.ForUnsignedRange / nbits.ForDictSize ahead of time; PackedEncoder
// itself performs no width selection.
func NewPackedEncoder(engine endian.EndianEngine, nbits int) *PackedEncoder {
	return &PackedEncoder{
		engine: engine,
		nbits:  nbits,
		buf:    pool.GetBlobBuffer(),
	}
}

func (e *PackedEncoder) stride() int { return e.nbits / 8 }

// Write packs a single word, amortizing buffer growth across repeated
// calls.
func (e *PackedEncoder) Write(val uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++

	if e.nbits == 1 {
		e.writeBit(val&1 != 0)
		return
	}

	n := e.stride()
	e.buf.Grow(n)
	e.putWord(val)
}

// WriteSlice packs a slice of words, pre-growing the buffer once for
// the whole batch.
func (e *PackedEncoder) WriteSlice(values []uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if len(values) == 0 {
		return
	}

	e.count += len(values)

	if e.nbits == 1 {
		for _, v := range values {
			e.writeBit(v&1 != 0)
		}
		return
	}

	n := e.stride()
	e.buf.Grow(len(values) * n)
	for _, v := range values {
		e.putWord(v)
	}
}

// putWord writes one nbits-wide word at the buffer's current length,
// extending it by the word's byte stride. nbits == 1 is handled
// separately by writeBit and never reaches here.
func (e *PackedEncoder) putWord(val uint64) {
	n := e.stride()
	start := e.buf.Len()
	e.buf.ExtendOrGrow(n)
	dst := e.buf.Slice(start, start+n)

	switch e.nbits {
	case 8:
		dst[0] = byte(val)
	case 16:
		e.engine.PutUint16(dst, uint16(val))
	case 32:
		e.engine.PutUint32(dst, uint32(val))
	case 64:
		e.engine.PutUint64(dst, val)
	default:
		panic("encoding: unsupported nbits for PackedEncoder")
	}
}

// writeBit accumulates one bit into the in-progress byte, flushing it
// to the pooled buffer once 8 bits have been written.
func (e *PackedEncoder) writeBit(set bool) {
	if set {
		e.bitCur |= 1 << e.bitPending
	}
	e.bitPending++

	if e.bitPending == 8 {
		e.buf.Grow(1)
		start := e.buf.Len()
		e.buf.ExtendOrGrow(1)
		e.buf.Slice(start, start+1)[0] = e.bitCur
		e.bitCur = 0
		e.bitPending = 0
	}
}

// Bytes returns the packed byte region written so far. For nbits == 1,
// any partial final byte is flushed (zero-padded) first.
func (e *PackedEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	if e.nbits == 1 && e.bitPending > 0 {
		e.buf.Grow(1)
		start := e.buf.Len()
		e.buf.ExtendOrGrow(1)
		e.buf.Slice(start, start+1)[0] = e.bitCur
		e.bitCur = 0
		e.bitPending = 0
	}

	return e.buf.Bytes()
}

// Len returns the number of words written.
func (e *PackedEncoder) Len() int { return e.count }

// Size returns the number of bytes written so far (forces a partial
// final byte to flush for nbits == 1, same as Bytes).
func (e *PackedEncoder) Size() int {
	return len(e.Bytes())
}

// Reset discards the words written so far; the buffer is retained for
// reuse within the same encoding session.
func (e *PackedEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
	e.bitCur = 0
	e.bitPending = 0
}

// Finish returns the scratch buffer to its pool. The encoder must not
// be used afterward.
func (e *PackedEncoder) Finish() {
	if e.buf != nil {
		pool.PutBlobBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
	e.bitCur = 0
	e.bitPending = 0
}
