// Package fbtable is the table layout reader for colvec's payload region.
//
// The payload following a blob's 4-byte wire header is a FlatBuffers table
// as specified: vtable-addressed fields, inline scalars, indirect nested
// tables, and vectors of bytes/scalars/strings/offsets. Rather than
// hand-roll a second implementation of vtable resolution, this package
// adopts the real github.com/google/flatbuffers/go runtime (Builder for
// writing, Table for reading) and layers hand-written, flatc-generated-
// style accessors on top of it for the five fixed tables the wire format
// names: NaMask, SimplePrimitiveVector, SimpleStringVector,
// ConstStringVector, DictStringVector.
//
// Field slot numbers are fixed by the wire format; a slot N lives at
// vtable byte offset 4+2*N, exactly as flatc would generate it. Each
// accessor file below mirrors the shape of flatc output: an Init/GetRootAsX
// pair, per-field getters guarded by Table.Offset, and X/XStart/XAdd.../XEnd
// builder helpers.
package fbtable
