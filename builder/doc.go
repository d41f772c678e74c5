// Package builder turns a stream of row-readers into the column blobs
// package encoding knows how to produce. It owns the encoding selection
// policy (Empty/Constant/Dictionary/Simple) so that callers never choose
// a wire representation themselves -- they describe a schema, feed rows,
// and get back one encoded byte region per column.
//
// # Row readers
//
// RowReader is the interface Builder consumes; it never assumes a
// particular storage shape behind a row. Five concrete adapters are
// provided: TupleRowReader (a fixed positional slice with optional
// fields), StringRowReader (string fields parsed on demand), a
// SingleValueRowReader for one-column streams, SequenceRowReader (a
// caller-supplied accessor function for arbitrary backing containers),
// and RoutingRowReader, which remaps column indices in front of another
// reader.
//
// # Selection policy
//
// Builder applies the same seven-rule policy to every column, in order:
// empty, all-missing, constant, dictionary (strings only, under a
// configurable distinct-value threshold), minimal-width integer, natural-
// width float/timestamp, and finally general string. The threshold
// defaults to half the column length capped at 255, overridable via
// WithDictThreshold.
//
// WithCompression selects the codec Simple-string and Dictionary blobs
// use to compress each string entry's bytes; it has no effect on
// numeric or bool columns, which are never compressed.
package builder
