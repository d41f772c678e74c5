// Package mask implements the NA-mask variants used by every column
// payload: all-present, all-missing, and an explicit per-element bitmap.
// It wraps fbtable.NaMask with the semantics assigned to the
// maskType tag, and supplies the encoder-side construction rule.
package mask

import "github.com/vecio/colvec/fbtable"

// Mask answers availability queries over a decoded NaMask table.
type Mask struct {
	tab *fbtable.NaMask
}

// FromTable wraps an already-resolved fbtable.NaMask. tab may be nil,
// which is treated as all-present (the zero-value default).
func FromTable(tab *fbtable.NaMask) Mask {
	return Mask{tab: tab}
}

// IsPresent reports whether logical position i holds a value. Reads
// past the declared bitmap word count return present (the out-of-range
// invariant for reads past the declared mask).
func (m Mask) IsPresent(i int) bool {
	if m.tab == nil {
		return true
	}

	switch m.tab.MaskType() {
	case fbtable.MaskTypeAllZeroes:
		return true
	case fbtable.MaskTypeAllOnes:
		return false
	case fbtable.MaskTypeBitmap:
		word := i >> 6
		if word >= m.tab.BitMaskLength() {
			return true
		}
		bit := uint(i & 63)

		return (m.tab.BitMask(word)>>bit)&1 == 0
	default:
		return true
	}
}

// Builder accumulates missing positions while a column is being built
// and resolves, at Finish, to the minimal NaMask variant (the
// encoder contract).
type Builder struct {
	length  int
	missing map[int]struct{}
}

// NewBuilder starts a mask builder for a column of the given declared
// length.
func NewBuilder(length int) *Builder {
	return &Builder{length: length}
}

// MarkMissing records that logical position i has no value.
func (b *Builder) MarkMissing(i int) {
	if b.missing == nil {
		b.missing = make(map[int]struct{})
	}
	b.missing[i] = struct{}{}
}

// Variant is the resolved tag the encoder should emit, plus the packed
// bitmap words when Variant is Bitmap.
type Variant struct {
	Type  byte
	Words []uint64
}

// Resolve picks AllZeroes/AllOnes/Bitmap per the emptiness of the
// missing set relative to the declared length.
func (b *Builder) Resolve() Variant {
	switch len(b.missing) {
	case 0:
		return Variant{Type: fbtable.MaskTypeAllZeroes}
	case b.length:
		return Variant{Type: fbtable.MaskTypeAllOnes}
	}

	numWords := (b.length + 63) / 64
	words := make([]uint64, numWords)
	for i := range b.missing {
		words[i>>6] |= 1 << uint(i&63)
	}

	return Variant{Type: fbtable.MaskTypeBitmap, Words: words}
}
