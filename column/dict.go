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

// dictHandle reads a DICT/STRING payload: get(i) =
// dictionary[code(i)], where code(i) is an nbits-wide unsigned index read
// through the nested SimplePrimitiveVector codes table. The dictionary
// itself is a plain string vector accessed by direct index; dict and
// view are both lazily computed per call rather than materialized. On
// the zero-copy variant each Get allocates a new strview.View that
// references the entry's bytes without copying them; a compressed
// column also allocates the decompressed bytes.
type dictHandle[T any] struct {
	length int
	nbits  int
	codes  []byte
	mask   mask.Mask
	lookup func(code int) T
}

func newDictStringHandle(tab *fbtable.DictStringVector) (*dictHandle[string], error) {
	width, codes, err := dictCodesInfo(tab)
	if err != nil {
		return nil, err
	}
	codec := tab.Codec()

	return &dictHandle[string]{
		length: int(tab.Len()),
		nbits:  width,
		codes:  codes,
		mask:   mask.FromTable(tab.NaMask(nil)),
		lookup: func(code int) string {
			if codec == 0 {
				return tab.Dict(code)
			}

			return string(stringBytes(tab.DictBytes(code), codec))
		},
	}, nil
}

func newDictUtf8ViewHandle(tab *fbtable.DictStringVector) (*dictHandle[*strview.View], error) {
	width, codes, err := dictCodesInfo(tab)
	if err != nil {
		return nil, err
	}
	codec := tab.Codec()

	return &dictHandle[*strview.View]{
		length: int(tab.Len()),
		nbits:  width,
		codes:  codes,
		mask:   mask.FromTable(tab.NaMask(nil)),
		lookup: func(code int) *strview.View {
			b := stringBytes(tab.DictBytes(code), codec)
			return strview.New(b, 0, len(b))
		},
	}, nil
}

func (h *dictHandle[T]) code(i int) int {
	return int(endian.ReadPacked(endian.GetLittleEndianEngine(), h.codes, i, h.nbits))
}

// dictCodesInfo resolves the nested codes table's width and packed bytes,
// validating both against the declared row count: a missing info table,
// an out-of-range width, or a codes region too short to hold tab.Len()
// packed entries are all structurally malformed blobs and fail here
// rather than panicking out of endian.ReadPacked on the first Get call.
func dictCodesInfo(tab *fbtable.DictStringVector) (width int, codes []byte, err error) {
	info := tab.Info(nil)
	if info == nil {
		return 0, nil, errs.ErrTruncatedPayload
	}

	width = int(info.NBits())
	if err := nbits.Check(width); err != nil {
		return 0, nil, err
	}

	codes = info.Data()
	if len(codes) < nbits.ByteLen(int(tab.Len()), width) {
		return 0, nil, errs.ErrTruncatedPayload
	}

	return width, codes, nil
}

func (h *dictHandle[T]) Length() int { return h.length }

func (h *dictHandle[T]) IsAvailable(i int) bool { return h.mask.IsPresent(i) }

func (h *dictHandle[T]) Get(i int) T { return h.lookup(h.code(i)) }

func (h *dictHandle[T]) GetSafe(i int) (T, bool) {
	var zero T
	if i < 0 || i >= h.length || !h.IsAvailable(i) {
		return zero, false
	}

	return h.Get(i), true
}

func (h *dictHandle[T]) GetBoxed(i int) any {
	v, ok := h.GetSafe(i)
	if !ok {
		return nil
	}

	return v
}

func (h *dictHandle[T]) All() iter.Seq[T] {
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

func (h *dictHandle[T]) AllOptional() iter.Seq2[T, bool] {
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
