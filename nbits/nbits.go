// Package nbits holds the fixed set of packed-value bit widths shared by
// the simple-primitive and dictionary-code readers/encoders, and the
// width-selection rules the encoder pipeline uses to pick the smallest
// one that preserves the data.
package nbits

import "github.com/vecio/colvec/errs"

// Valid reports whether n is one of the closed set of bit widths the wire
// format permits for a packed data or codes region. Sub-8-bit widths other
// than 1 are rejected deliberately: the encoder never chooses them, so a
// decoder encountering one can only be reading a corrupt or
// forward-incompatible blob.
func Valid(n int) bool {
	switch n {
	case 1, 8, 16, 32, 64:
		return true
	default:
		return false
	}
}

// Check validates n against the allowed set, returning ErrUnsupportedNBits
// if it is not a member.
func Check(n int) error {
	if !Valid(n) {
		return errs.ErrUnsupportedNBits
	}

	return nil
}

// ByteLen returns the number of bytes required to hold length values
// packed at width nbits, rounded up to a whole byte.
func ByteLen(length int, nbitsWidth int) int {
	return (length*nbitsWidth + 7) / 8
}

// ForSignedRange returns the minimum width in {8, 16, 32, 64} whose signed
// range [-(2^(w-1)), 2^(w-1)-1] covers [min, max].
func ForSignedRange(min, max int64) int {
	switch {
	case min >= -(1<<7) && max <= (1<<7)-1:
		return 8
	case min >= -(1<<15) && max <= (1<<15)-1:
		return 16
	case min >= -(1<<31) && max <= (1<<31)-1:
		return 32
	default:
		return 64
	}
}

// ForUnsignedRange returns the minimum width in {8, 16, 32, 64} whose
// unsigned range [0, 2^w - 1] covers max.
func ForUnsignedRange(max uint64) int {
	switch {
	case max <= (1<<8)-1:
		return 8
	case max <= (1<<16)-1:
		return 16
	case max <= (1<<32)-1:
		return 32
	default:
		return 64
	}
}

// ForZeroExtendedIntRange returns the minimum packed width in
// {8, 16, 32, 64}, capped at nativeWidth, that preserves [min, max] under
// the wire format's zero-extension-only decode rule: a value is only
// recoverable at a width narrower than nativeWidth if it is non-negative,
// since a narrower stored width is widened by zero-extension rather than
// sign-extension. A negative value therefore always forces the column's
// full native width.
func ForZeroExtendedIntRange(min, max int64, nativeWidth int) int {
	if min < 0 {
		return nativeWidth
	}

	w := ForUnsignedRange(uint64(max))
	if w > nativeWidth {
		return nativeWidth
	}

	return w
}

// ForDictSize returns the code width for a dictionary with size distinct
// entries: {<=1: 1, <=255: 8, <=65535: 16, else: 32}.
func ForDictSize(size int) int {
	switch {
	case size <= 1:
		return 1
	case size <= 255:
		return 8
	case size <= 65535:
		return 16
	default:
		return 32
	}
}
