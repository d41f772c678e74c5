package compress

import (
	"fmt"

	"github.com/vecio/colvec/errs"
	"github.com/vecio/colvec/wire"
)

// Compressor compresses a single string entry's bytes before it is
// embedded in a column's string vector.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	// data is not modified. The no-op codec returns data itself; the
	// other built-in codecs return a newly allocated slice.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor for one previously compressed entry.
type Decompressor interface {
	// Decompress returns data's original bytes. data is not modified.
	// The no-op codec returns data itself; the other built-in codecs
	// return a newly allocated slice.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions; each compression family in this
// package implements it.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[wire.CompressionType]Codec{
	wire.CompressionNone: NewNoOpCompressor(),
	wire.CompressionZstd: NewZstdCompressor(),
	wire.CompressionS2:   NewS2Compressor(),
	wire.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType wire.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
}
