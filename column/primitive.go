package column

import (
	"iter"
	"math"

	"github.com/vecio/colvec/endian"
	"github.com/vecio/colvec/errs"
	"github.com/vecio/colvec/fbtable"
	"github.com/vecio/colvec/mask"
	"github.com/vecio/colvec/nbits"
)

// primitiveHandle reads a SimplePrimitiveVector payload:
// a packed, fixed-width region plus an NA mask, decoded element-by-element
// through decode.
type primitiveHandle[T any] struct {
	length int
	nbits  int
	data   []byte
	mask   mask.Mask
	decode func(raw uint64) T
}

// newPrimitiveHandle validates the table's declared width and data region
// before constructing the handle: a malformed blob must fail here, not
// panic later out of endian.ReadPacked on the first Get call.
func newPrimitiveHandle[T any](tab *fbtable.SimplePrimitiveVector, decode func(uint64) T) (*primitiveHandle[T], error) {
	width := int(tab.NBits())
	if err := nbits.Check(width); err != nil {
		return nil, err
	}

	length := int(tab.Len())
	data := tab.Data()
	if len(data) < nbits.ByteLen(length, width) {
		return nil, errs.ErrTruncatedPayload
	}

	return &primitiveHandle[T]{
		length: length,
		nbits:  width,
		data:   data,
		mask:   mask.FromTable(tab.NaMask(nil)),
		decode: decode,
	}, nil
}

func (h *primitiveHandle[T]) Length() int { return h.length }

func (h *primitiveHandle[T]) IsAvailable(i int) bool { return h.mask.IsPresent(i) }

func (h *primitiveHandle[T]) Get(i int) T {
	raw := endian.ReadPacked(endian.GetLittleEndianEngine(), h.data, i, h.nbits)
	return h.decode(raw)
}

func (h *primitiveHandle[T]) GetSafe(i int) (T, bool) {
	var zero T
	if i < 0 || i >= h.length || !h.IsAvailable(i) {
		return zero, false
	}

	return h.Get(i), true
}

func (h *primitiveHandle[T]) GetBoxed(i int) any {
	v, ok := h.GetSafe(i)
	if !ok {
		return nil
	}

	return v
}

func (h *primitiveHandle[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < h.length; i++ {
			if !h.IsAvailable(i) {
				continue
			}
			if !yield(h.Get(i)) {
				return
			}
		}
	}
}

func (h *primitiveHandle[T]) AllOptional() iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		var zero T
		for i := 0; i < h.length; i++ {
			if h.IsAvailable(i) {
				if !yield(h.Get(i), true) {
					return
				}
			} else if !yield(zero, false) {
				return
			}
		}
	}
}

func decodeBool(raw uint64) bool       { return raw&1 != 0 }
func decodeInt32(raw uint64) int32     { return int32(uint32(raw)) }
func decodeInt64(raw uint64) int64     { return int64(raw) }
func decodeFloat32(raw uint64) float32 { return math.Float32frombits(uint32(raw)) }
func decodeFloat64(raw uint64) float64 { return math.Float64frombits(raw) }
