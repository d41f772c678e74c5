// Package strview implements a zero-copy UTF-8 string view: a
// {base region, offset, length} triple with unsigned lexicographic
// ordering, byte-identical equality, and a lazily computed, cached pair
// of 32-bit/64-bit hashes seeded with 0x9747B28C.
package strview

import (
	"bytes"
	"sync/atomic"

	"github.com/vecio/colvec/internal/hash"
)

// Seed is the fixed xxHash seed used for both the 32-bit
// and 64-bit string view hashes.
const Seed = 0x9747B28C

// notComputed is the atomic sentinel meaning "hash not yet computed".
// xxHash32/64 of any fixed seed can legitimately produce this value with
// negligible but nonzero probability; View guards against that collision
// by storing computed+1 and subtracting on read (see hash32/hash64).
const notComputed = 0

// View is a non-owning reference to a UTF-8 substring of base. It never
// copies base's bytes; base must outlive every View derived from it.
type View struct {
	base   []byte
	offset int
	length int

	cached32 atomic.Uint32
	cached64 atomic.Uint64
}

// New creates a View over base[offset : offset+length]. The caller is
// responsible for offset/length staying within base's bounds and for base
// remaining valid (and unmutated) for the View's lifetime.
func New(base []byte, offset, length int) *View {
	return &View{base: base, offset: offset, length: length}
}

// FromString creates a View over an already-owned string's bytes, useful
// for tests and for wrapping values that did not arrive via a decoded
// column's backing buffer.
func FromString(s string) *View {
	b := []byte(s)
	return New(b, 0, len(b))
}

// Bytes returns the zero-copy byte slice this view addresses.
func (v *View) Bytes() []byte {
	return v.base[v.offset : v.offset+v.length]
}

// String allocates and returns a Go string copy of the view's bytes.
func (v *View) String() string {
	return string(v.Bytes())
}

// Len returns the view's byte length.
func (v *View) Len() int {
	return v.length
}

// Equal reports byte-identical equality with other.
func (v *View) Equal(other *View) bool {
	return bytes.Equal(v.Bytes(), other.Bytes())
}

// Less implements unsigned lexicographic byte ordering.
func (v *View) Less(other *View) bool {
	return bytes.Compare(v.Bytes(), other.Bytes()) < 0
}

// Hash32 returns the view's xxHash32 (seed Seed), computing and caching it
// on first call. Safe for concurrent use.
func (v *View) Hash32() uint32 {
	if h := v.cached32.Load(); h != notComputed {
		return h - 1
	}

	h := hash.XXHash32(v.Bytes(), Seed)
	v.cached32.CompareAndSwap(notComputed, h+1)

	return h
}

// Hash64 returns the view's xxHash64 (seed Seed), computing and caching it
// on first call. Safe for concurrent use.
func (v *View) Hash64() uint64 {
	if h := v.cached64.Load(); h != notComputed {
		return h - 1
	}

	h := hash.Seeded64(v.Bytes(), Seed)
	v.cached64.CompareAndSwap(notComputed, h+1)

	return h
}
