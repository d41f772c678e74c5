package column

import (
	"iter"

	"github.com/vecio/colvec/endian"
	"github.com/vecio/colvec/errs"
	"github.com/vecio/colvec/fbtable"
	"github.com/vecio/colvec/mask"
	"github.com/vecio/colvec/nbits"
	"github.com/vecio/colvec/strview"
)

// constHandle reads a CONST/PRIMITIVE payload: one
// repeated value plus the declared length and NA mask. It reuses the
// SimplePrimitiveVector table shape, reinterpreting `data` as exactly one
// packed element (at index 0) rather than `len` elements -- `len` still
// supplies the row count, matching "single stored value + declared length
// + NA mask" exactly.
type constHandle[T any] struct {
	length int
	value  T
	mask   mask.Mask
}

// newConstPrimitiveHandle validates the table's declared width and the
// single packed value's backing bytes before constructing the handle,
// the same fail-fast contract newPrimitiveHandle applies.
func newConstPrimitiveHandle[T any](tab *fbtable.SimplePrimitiveVector, decode func(uint64) T) (*constHandle[T], error) {
	width := int(tab.NBits())
	if err := nbits.Check(width); err != nil {
		return nil, err
	}

	data := tab.Data()
	if len(data) < nbits.ByteLen(1, width) {
		return nil, errs.ErrTruncatedPayload
	}

	raw := endian.ReadPacked(endian.GetLittleEndianEngine(), data, 0, width)

	return &constHandle[T]{
		length: int(tab.Len()),
		value:  decode(raw),
		mask:   mask.FromTable(tab.NaMask(nil)),
	}, nil
}

func (h *constHandle[T]) Length() int { return h.length }

func (h *constHandle[T]) IsAvailable(i int) bool { return h.mask.IsPresent(i) }

func (h *constHandle[T]) Get(int) T { return h.value }

func (h *constHandle[T]) GetSafe(i int) (T, bool) {
	var zero T
	if i < 0 || i >= h.length || !h.IsAvailable(i) {
		return zero, false
	}

	return h.value, true
}

func (h *constHandle[T]) GetBoxed(i int) any {
	v, ok := h.GetSafe(i)
	if !ok {
		return nil
	}

	return v
}

func (h *constHandle[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < h.length; i++ {
			if h.IsAvailable(i) && !yield(h.value) {
				return
			}
		}
	}
}

func (h *constHandle[T]) AllOptional() iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		var zero T
		for i := 0; i < h.length; i++ {
			if h.IsAvailable(i) {
				if !yield(h.value, true) {
					return
				}
			} else if !yield(zero, false) {
				return
			}
		}
	}
}

// newConstStringHandle builds the owned-string CONST/STRING handle.
func newConstStringHandle(tab *fbtable.ConstStringVector) *constHandle[string] {
	return &constHandle[string]{
		length: int(tab.Len()),
		value:  tab.Str(),
		mask:   mask.FromTable(tab.NaMask(nil)),
	}
}

// newConstUtf8ViewHandle builds the zero-copy-view CONST/STRING handle.
func newConstUtf8ViewHandle(tab *fbtable.ConstStringVector) *constHandle[*strview.View] {
	b := tab.StrBytes()

	return &constHandle[*strview.View]{
		length: int(tab.Len()),
		value:  strview.New(b, 0, len(b)),
		mask:   mask.FromTable(tab.NaMask(nil)),
	}
}
