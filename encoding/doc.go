// Package encoding builds the on-wire blob for every payload shape the
// wire format defines: Empty, Constant (primitive or string), Simple
// primitive/bool, Simple string, and Dictionary.
//
// Each Encode* function accepts already-selected parameters (the
// resolved nbits, an already-deduplicated dictionary, a resolved NA
// mask variant) rather than performing the row-to-column selection
// policy itself -- that lives one layer up, in package builder. This
// mirrors the separation between a per-kind encoder and the
// higher-level blob assembly that chooses which encoder to invoke.
//
// # Packed values
//
// PackedEncoder accumulates raw uint64 words at a fixed bit width using
// a pooled scratch buffer with the same amortized-growth strategy the
// teacher's NumericRawEncoder uses for its fixed 8-byte float64 stride,
// generalized to the wire format's {1, 8, 16, 32, 64} width set.
//
// # Strings and compression
//
// EncodeSimpleString and EncodeDictString both accept a
// wire.CompressionType; when non-zero, every string entry is compressed
// independently through the compress package before being embedded, so
// a flatbuffers reader can still address any single entry by offset
// without decompressing its neighbors.
package encoding
