// Package colvec provides a compact, columnar binary encoding for
// mixed-type tabular data. Each column is encoded independently at
// whichever shape -- a single repeated value, a deduplicated
// dictionary, a bit-packed primitive run, or a plain string vector --
// is smallest for the values actually observed, and decodes through a
// single polymorphic handle regardless of which shape was chosen.
//
// # Encoding
//
// Rows are fed through a builder.Builder against a fixed schema:
//
//	schema := []builder.ColumnSpec{
//	    {Name: "name", Type: column.String},
//	    {Name: "age", Type: column.Int32},
//	}
//	b := builder.New(schema)
//	_ = b.AddRow(builder.NewTupleRowReader("Ada Lovelace", int32(36)))
//	_ = b.AddRow(builder.NewTupleRowReader("Alan Turing", nil))
//	blobs, err := b.Build()
//
// Builder accepts several row shapes beyond TupleRowReader -- string
// fields parsed on demand, a single scalar, a caller-supplied accessor,
// and a column-remapping wrapper -- see package builder.
//
// # Decoding
//
// Open resolves one column's blob into a typed handle:
//
//	name, err := colvec.Open[string](column.String, blobs["name"], 0)
//	for v := range name.All() {
//	    fmt.Println(v)
//	}
//
// Handles are immutable and safe to share across goroutines as long as
// the backing byte region is not mutated; they hold a non-owning
// reference to it, so callers must keep it alive for as long as the
// handle is in use.
//
// This package is a thin convenience wrapper around builder (encode)
// and column (decode); reach for those packages directly when a custom
// element-type registry, a non-default dictionary threshold, or a
// caller-owned row-reader shape is needed.
package colvec

import "github.com/vecio/colvec/column"

// defaultRegistry is the column-handle registry Open and OpenAny
// consult. It carries the built-in entries column.NewRegistry
// provides; use Registry to extend it with custom element types.
var defaultRegistry = column.NewRegistry()

// Open resolves a column handle from an encoded byte region using the
// default column-handle registry. lengthHint is only consulted when
// region is empty or absent.
func Open[T any](elem column.ElementType, region []byte, lengthHint int) (column.Handle[T], error) {
	return column.Typed[T](defaultRegistry, elem, region, lengthHint)
}

// OpenAny is Open's type-erased form, for callers that don't know the
// column's Go type statically -- e.g. a generic table reader iterating
// a schema of mixed element types.
func OpenAny(elem column.ElementType, region []byte, lengthHint int) (column.AnyHandle, error) {
	return column.New(defaultRegistry, elem, region, lengthHint)
}

// Registry returns the package-level default column-handle registry, so
// callers can call Registry().Register to add element types before
// calling Open or OpenAny.
func Registry() *column.Registry {
	return defaultRegistry
}
