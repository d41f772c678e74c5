package encoding

import "github.com/vecio/colvec/wire"

// EncodeEmpty builds an EMPTY blob: the 4-byte header alone, with the
// declared logical length carried in the header's aux field. This is
// the minimal blob shape -- 4 bytes regardless of length.
func EncodeEmpty(length int) []byte {
	return wire.AppendHeader(nil, wire.Empty, wire.SubPrimitive, uint16(length))
}
