// Package encoding builds the payload bytes for each wire-format major
// type (Empty, Constant, Simple primitive/string, Dictionary) and
// packages them with their 4-byte header into a self-contained blob
// ready for column.New to decode.
package encoding

// ColumnarEncoder accumulates a single column's packed bit stream
// (a per-kind streaming encoder shape, generalized here to
// the raw uint64 words a SimplePrimitiveVector's data region packs).
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice. The returned slice is valid
	// until the next call to Write, WriteSlice, or Reset and must not
	// be modified by the caller.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the number of bytes written to the internal buffer.
	Size() int

	// Reset clears the encoder's logical state but keeps the
	// accumulated buffer, allowing it to be reused for a new column.
	Reset()

	// Finish finalizes the encoding session and returns the buffer to
	// its pool. The encoder must not be used afterward.
	Finish()

	// Write appends a single value.
	Write(data T)

	// WriteSlice appends a slice of values in one pre-sized allocation.
	WriteSlice(values []T)
}
