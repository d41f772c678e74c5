// Package column implements the polymorphic column handle: a decoder
// that resolves a byte region's wire header and dispatches to the
// variant-specific reader (Empty/Constant/Simple primitive/Simple
// string/Dictionary), exposed through a single generic interface plus a
// non-generic variant for boxed interop.
package column

import "iter"

// ElementType identifies the logical Go type a column's values decode to.
// The registry (see Registry) maps each ElementType to a MakerFunc.
type ElementType uint8

const (
	Bool ElementType = iota
	Int32
	Int64
	Float32
	Float64
	String
	Utf8View
	DateTime
	SQLTimestamp
)

func (e ElementType) String() string {
	switch e {
	case Bool:
		return "bool"
	case Int32:
		return "i32"
	case Int64:
		return "i64"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case String:
		return "string"
	case Utf8View:
		return "utf8-view"
	case DateTime:
		return "datetime"
	case SQLTimestamp:
		return "sql-timestamp"
	default:
		return "unknown"
	}
}

// Handle is the typed read-only view over a decoded column. Length, byte
// layout, and decode cost vary per concrete variant; the contract does
// not.
//
// Integer widths narrower than the element's native width are always
// zero-extended, never sign-extended (a deliberate signed-width
// question, resolved): a negative int32/int64 column is only
// representable once the encoder has chosen that element's full native
// width, which the builder's selection policy guarantees (nbits.ForZeroExtendedIntRange).
type Handle[T any] interface {
	// Length returns the logical row count.
	Length() int

	// IsAvailable reports whether a value is present at i.
	IsAvailable(i int) bool

	// Get returns the element at i. If IsAvailable(i) is false the
	// result is unspecified.
	Get(i int) T

	// GetSafe is the bounds- and availability-checked variant of Get.
	GetSafe(i int) (T, bool)

	// All iterates only the available values, in index order.
	All() iter.Seq[T]

	// AllOptional iterates every index, pairing each value with its
	// availability -- Go's idiomatic substitute for Option<T>.
	AllOptional() iter.Seq2[T, bool]
}

// AnyHandle is the non-generic projection of Handle[T], used for boxed
// interop where the caller does not know T
// statically.
type AnyHandle interface {
	Length() int
	IsAvailable(i int) bool

	// GetBoxed returns the element at i boxed as any, or nil if not
	// available.
	GetBoxed(i int) any
}

// As type-asserts an AnyHandle back to its statically typed Handle[T].
// Every concrete handle this package constructs implements both
// interfaces simultaneously, so As succeeds whenever T matches the
// ElementType the handle was built for.
func As[T any](h AnyHandle) (Handle[T], bool) {
	typed, ok := h.(Handle[T])
	return typed, ok
}
