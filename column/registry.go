package column

import (
	"time"

	"github.com/vecio/colvec/errs"
	"github.com/vecio/colvec/fbtable"
	"github.com/vecio/colvec/wire"
)

// MakerFunc constructs the variant-specific handle for one element type,
// given the already-decoded wire header and the payload bytes that follow
// it (the flatbuffers-encoded table). It is never called for major=Empty;
// New handles that case itself before consulting the registry.
type MakerFunc func(header wire.Header, payload []byte, declaredLength int) (AnyHandle, error)

// Registry maps an ElementType to the maker that decodes it. The zero
// value is usable but empty; use NewRegistry for the default entries.
type Registry struct {
	makers map[ElementType]MakerFunc
}

// NewRegistry returns a registry pre-populated with the default entries
// the default entries: bool, i32, i64, f32, f64, string, utf8-view,
// datetime, sql-timestamp.
func NewRegistry() *Registry {
	r := &Registry{makers: make(map[ElementType]MakerFunc)}

	r.Register(Bool, primitiveMaker(decodeBool))
	r.Register(Int32, primitiveMaker(decodeInt32))
	r.Register(Int64, primitiveMaker(decodeInt64))
	r.Register(Float32, primitiveMaker(decodeFloat32))
	r.Register(Float64, primitiveMaker(decodeFloat64))
	r.Register(String, stringMaker)
	r.Register(Utf8View, utf8ViewMaker)
	r.Register(DateTime, primitiveMaker(decodeUnixMicros))
	r.Register(SQLTimestamp, primitiveMaker(decodeUnixMicros))

	return r
}

// Register installs or overwrites the maker for an element type,
// making the registry user-extensible.
func (r *Registry) Register(elem ElementType, maker MakerFunc) {
	if r.makers == nil {
		r.makers = make(map[ElementType]MakerFunc)
	}
	r.makers[elem] = maker
}

func (r *Registry) lookup(elem ElementType) (MakerFunc, error) {
	maker, ok := r.makers[elem]
	if !ok {
		return nil, errs.ErrTypeMismatch
	}

	return maker, nil
}

func decodeUnixMicros(raw uint64) time.Time {
	return time.UnixMicro(int64(raw)).UTC()
}

// primitiveMaker builds a MakerFunc for any element type whose values
// decode directly from a packed uint64: numerics,
// bool, and the datetime/sql-timestamp adapters (unix-micros int64 under
// the hood, since a timestamp reduces to a primitive encoding.
func primitiveMaker[T any](decode func(uint64) T) MakerFunc {
	return func(header wire.Header, payload []byte, declaredLength int) (AnyHandle, error) {
		switch header.Major {
		case wire.Simple:
			tab := fbtable.GetRootAsSimplePrimitiveVector(payload, 0)
			return newPrimitiveHandle(tab, decode)
		case wire.Const:
			tab := fbtable.GetRootAsSimplePrimitiveVector(payload, 0)
			return newConstPrimitiveHandle(tab, decode)
		default:
			return nil, errs.ErrTypeMismatch
		}
	}
}

func stringMaker(header wire.Header, payload []byte, declaredLength int) (AnyHandle, error) {
	switch header.Major {
	case wire.Simple:
		return newSimpleStringHandle(fbtable.GetRootAsSimpleStringVector(payload, 0))
	case wire.Dict:
		return newDictStringHandle(fbtable.GetRootAsDictStringVector(payload, 0))
	case wire.Const:
		return newConstStringHandle(fbtable.GetRootAsConstStringVector(payload, 0)), nil
	default:
		return nil, errs.ErrTypeMismatch
	}
}

func utf8ViewMaker(header wire.Header, payload []byte, declaredLength int) (AnyHandle, error) {
	switch header.Major {
	case wire.Simple:
		return newSimpleUtf8ViewHandle(fbtable.GetRootAsSimpleStringVector(payload, 0))
	case wire.Dict:
		return newDictUtf8ViewHandle(fbtable.GetRootAsDictStringVector(payload, 0))
	case wire.Const:
		return newConstUtf8ViewHandle(fbtable.GetRootAsConstStringVector(payload, 0)), nil
	default:
		return nil, errs.ErrTypeMismatch
	}
}
