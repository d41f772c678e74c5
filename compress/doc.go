// Package compress provides compression and decompression codecs for
// per-entry string payloads in the columnar wire format.
//
// A column's string-vector table carries an additive codec slot
// (wire.CompressionType); when non-zero, each entry's stored bytes are
// compressed independently so flatbuffers' offset addressing into the
// string/byte vector stays intact. Four codecs are available:
//
//   - None: no compression
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// GetCodec resolves a wire.CompressionType to its built-in Codec.
package compress
