package column

import (
	"iter"

	"github.com/vecio/colvec/compress"
	"github.com/vecio/colvec/errs"
	"github.com/vecio/colvec/fbtable"
	"github.com/vecio/colvec/mask"
	"github.com/vecio/colvec/strview"
	"github.com/vecio/colvec/wire"
)

// stringHandle reads a SIMPLE/STRING payload: a vector of
// length-prefixed UTF-8 strings, exposed either as allocating owned
// strings (view=false) or zero-copy views (view=true). Both paths read
// the same underlying table; only the per-element accessor differs.
type stringHandle[T any] struct {
	length int
	mask   mask.Mask
	get    func(i int) T
}

// stringBytes returns the raw bytes stored for entry i, decompressed
// according to the table's additive codec slot. A zero codec (slot
// absent) means the stored bytes are already the UTF-8 payload; any
// other value names the compress.Codec each entry was run through
// independently, since flatbuffers addresses entries by per-element
// offset rather than a single whole-column stream.
func stringBytes(raw []byte, codec byte) []byte {
	if codec == 0 || wire.CompressionType(codec) == wire.CompressionNone {
		return raw
	}

	c, err := compress.GetCodec(wire.CompressionType(codec))
	if err != nil {
		return raw
	}

	out, err := c.Decompress(raw)
	if err != nil {
		return raw
	}

	return out
}

// checkStringVectorLength validates that the table's declared row count
// matches the actual flatbuffers vector length before any index into it
// is trusted: a mismatch means an out-of-range Data/DataBytes call would
// otherwise panic deep inside the flatbuffers runtime instead of failing
// at construction.
func checkStringVectorLength(declared int, actual int) error {
	if declared != actual {
		return errs.ErrLengthMismatch
	}

	return nil
}

func newSimpleStringHandle(tab *fbtable.SimpleStringVector) (*stringHandle[string], error) {
	length := int(tab.DataLen())
	if err := checkStringVectorLength(length, tab.DataLength()); err != nil {
		return nil, err
	}

	codec := tab.Codec()

	return &stringHandle[string]{
		length: length,
		mask:   mask.FromTable(tab.NaMask(nil)),
		get: func(i int) string {
			if codec == 0 {
				return tab.Data(i)
			}

			return string(stringBytes(tab.DataBytes(i), codec))
		},
	}, nil
}

// newSimpleUtf8ViewHandle returns zero-copy views into the table's
// backing bytes when uncompressed. A compressed column cannot be
// viewed zero-copy -- each Get decompresses into a freshly allocated
// buffer that the view then wraps.
func newSimpleUtf8ViewHandle(tab *fbtable.SimpleStringVector) (*stringHandle[*strview.View], error) {
	length := int(tab.DataLen())
	if err := checkStringVectorLength(length, tab.DataLength()); err != nil {
		return nil, err
	}

	codec := tab.Codec()

	return &stringHandle[*strview.View]{
		length: length,
		mask:   mask.FromTable(tab.NaMask(nil)),
		get: func(i int) *strview.View {
			b := stringBytes(tab.DataBytes(i), codec)
			return strview.New(b, 0, len(b))
		},
	}, nil
}

func (h *stringHandle[T]) Length() int { return h.length }

func (h *stringHandle[T]) IsAvailable(i int) bool { return h.mask.IsPresent(i) }

func (h *stringHandle[T]) Get(i int) T { return h.get(i) }

func (h *stringHandle[T]) GetSafe(i int) (T, bool) {
	var zero T
	if i < 0 || i >= h.length || !h.IsAvailable(i) {
		return zero, false
	}

	return h.get(i), true
}

func (h *stringHandle[T]) GetBoxed(i int) any {
	v, ok := h.GetSafe(i)
	if !ok {
		return nil
	}

	return v
}

func (h *stringHandle[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < h.length; i++ {
			if !h.IsAvailable(i) {
				continue
			}
			if !yield(h.get(i)) {
				return
			}
		}
	}
}

func (h *stringHandle[T]) AllOptional() iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		var zero T
		for i := 0; i < h.length; i++ {
			if h.IsAvailable(i) {
				if !yield(h.get(i), true) {
					return
				}
			} else if !yield(zero, false) {
				return
			}
		}
	}
}
