package builder

import "strconv"

// RowReader exposes one row's values by column index. It commits to no
// storage shape: the concrete adapters below wrap a positional slice,
// a set of string fields, a single value, a caller-supplied accessor,
// or another RowReader with its columns remapped.
type RowReader interface {
	// IsPresent reports whether column col holds a value for this row.
	IsPresent(col int) bool

	Bool(col int) bool
	Int32(col int) int32
	Int64(col int) int64
	Float32(col int) float32
	Float64(col int) float64
	Str(col int) string
	Utf8(col int) string

	// Any returns the column's value boxed, for extension element types
	// (e.g. time.Time for datetime/sql-timestamp) that have no dedicated
	// typed getter.
	Any(col int) any
}

// lenReporter is implemented by row readers that know their own column
// count, letting Builder.AddRow catch a width mismatch against the
// schema instead of panicking deep inside a getter.
type lenReporter interface {
	Len() int
}

// TupleRowReader wraps a fixed positional slice of values. A nil entry
// marks that column missing for the row.
type TupleRowReader struct {
	values []any
}

// NewTupleRowReader builds a TupleRowReader over values, positionally
// aligned with the target schema.
func NewTupleRowReader(values ...any) *TupleRowReader {
	return &TupleRowReader{values: values}
}

func (r *TupleRowReader) Len() int { return len(r.values) }

func (r *TupleRowReader) IsPresent(col int) bool {
	return col >= 0 && col < len(r.values) && r.values[col] != nil
}

func (r *TupleRowReader) Bool(col int) bool       { return r.values[col].(bool) }
func (r *TupleRowReader) Int32(col int) int32     { return r.values[col].(int32) }
func (r *TupleRowReader) Int64(col int) int64     { return r.values[col].(int64) }
func (r *TupleRowReader) Float32(col int) float32 { return r.values[col].(float32) }
func (r *TupleRowReader) Float64(col int) float64 { return r.values[col].(float64) }
func (r *TupleRowReader) Str(col int) string      { return r.values[col].(string) }
func (r *TupleRowReader) Utf8(col int) string     { return r.values[col].(string) }
func (r *TupleRowReader) Any(col int) any         { return r.values[col] }

// StringRowReader wraps a row whose fields are already strings (e.g. a
// CSV record), parsing each on demand as the requested type. An empty
// field is treated as missing.
type StringRowReader struct {
	fields []string
}

// NewStringRowReader builds a StringRowReader over fields.
func NewStringRowReader(fields ...string) *StringRowReader {
	return &StringRowReader{fields: fields}
}

func (r *StringRowReader) Len() int { return len(r.fields) }

func (r *StringRowReader) IsPresent(col int) bool {
	return col >= 0 && col < len(r.fields) && r.fields[col] != ""
}

func (r *StringRowReader) Bool(col int) bool {
	v, err := strconv.ParseBool(r.fields[col])
	if err != nil {
		panic(err)
	}
	return v
}

func (r *StringRowReader) Int32(col int) int32 {
	v, err := strconv.ParseInt(r.fields[col], 10, 32)
	if err != nil {
		panic(err)
	}
	return int32(v)
}

func (r *StringRowReader) Int64(col int) int64 {
	v, err := strconv.ParseInt(r.fields[col], 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

func (r *StringRowReader) Float32(col int) float32 {
	v, err := strconv.ParseFloat(r.fields[col], 32)
	if err != nil {
		panic(err)
	}
	return float32(v)
}

func (r *StringRowReader) Float64(col int) float64 {
	v, err := strconv.ParseFloat(r.fields[col], 64)
	if err != nil {
		panic(err)
	}
	return v
}

func (r *StringRowReader) Str(col int) string  { return r.fields[col] }
func (r *StringRowReader) Utf8(col int) string { return r.fields[col] }
func (r *StringRowReader) Any(col int) any     { return r.fields[col] }

// SingleValueRowReader adapts one value into a one-column row, for
// streams that carry a single scalar per record.
type SingleValueRowReader struct {
	value any
}

// NewSingleValueRowReader wraps value as column 0 of a one-column row.
func NewSingleValueRowReader(value any) *SingleValueRowReader {
	return &SingleValueRowReader{value: value}
}

func (r *SingleValueRowReader) Len() int { return 1 }

func (r *SingleValueRowReader) IsPresent(col int) bool {
	return col == 0 && r.value != nil
}

func (r *SingleValueRowReader) Bool(int) bool       { return r.value.(bool) }
func (r *SingleValueRowReader) Int32(int) int32     { return r.value.(int32) }
func (r *SingleValueRowReader) Int64(int) int64     { return r.value.(int64) }
func (r *SingleValueRowReader) Float32(int) float32 { return r.value.(float32) }
func (r *SingleValueRowReader) Float64(int) float64 { return r.value.(float64) }
func (r *SingleValueRowReader) Str(int) string      { return r.value.(string) }
func (r *SingleValueRowReader) Utf8(int) string     { return r.value.(string) }
func (r *SingleValueRowReader) Any(int) any         { return r.value }

// SequenceRowReader adapts an arbitrary backing container through a
// caller-supplied accessor, for sources that don't want to materialize a
// []any per row (e.g. a decoded protobuf message or a database driver's
// row cursor). at returns the boxed value and whether column col is
// present.
type SequenceRowReader struct {
	at func(col int) (any, bool)
}

// NewSequenceRowReader builds a SequenceRowReader backed by at.
func NewSequenceRowReader(at func(col int) (any, bool)) *SequenceRowReader {
	return &SequenceRowReader{at: at}
}

func (r *SequenceRowReader) IsPresent(col int) bool {
	_, ok := r.at(col)
	return ok
}

func (r *SequenceRowReader) value(col int) any {
	v, _ := r.at(col)
	return v
}

func (r *SequenceRowReader) Bool(col int) bool       { return r.value(col).(bool) }
func (r *SequenceRowReader) Int32(col int) int32     { return r.value(col).(int32) }
func (r *SequenceRowReader) Int64(col int) int64     { return r.value(col).(int64) }
func (r *SequenceRowReader) Float32(col int) float32 { return r.value(col).(float32) }
func (r *SequenceRowReader) Float64(col int) float64 { return r.value(col).(float64) }
func (r *SequenceRowReader) Str(col int) string      { return r.value(col).(string) }
func (r *SequenceRowReader) Utf8(col int) string     { return r.value(col).(string) }
func (r *SequenceRowReader) Any(col int) any         { return r.value(col) }

// RoutingRowReader wraps another RowReader and remaps column indices
// through cols before delegating -- RoutingRowReader column i reads
// inner column cols[i]. Useful when a schema's column order differs
// from the order values arrive in.
type RoutingRowReader struct {
	inner RowReader
	cols  []int
}

// NewRoutingRowReader builds a RoutingRowReader over inner, where
// requests for column i are forwarded to inner column cols[i].
func NewRoutingRowReader(inner RowReader, cols ...int) *RoutingRowReader {
	return &RoutingRowReader{inner: inner, cols: cols}
}

func (r *RoutingRowReader) Len() int { return len(r.cols) }

func (r *RoutingRowReader) route(col int) int {
	if col < 0 || col >= len(r.cols) {
		return -1
	}
	return r.cols[col]
}

func (r *RoutingRowReader) IsPresent(col int) bool {
	target := r.route(col)
	return target >= 0 && r.inner.IsPresent(target)
}

func (r *RoutingRowReader) Bool(col int) bool       { return r.inner.Bool(r.route(col)) }
func (r *RoutingRowReader) Int32(col int) int32     { return r.inner.Int32(r.route(col)) }
func (r *RoutingRowReader) Int64(col int) int64     { return r.inner.Int64(r.route(col)) }
func (r *RoutingRowReader) Float32(col int) float32 { return r.inner.Float32(r.route(col)) }
func (r *RoutingRowReader) Float64(col int) float64 { return r.inner.Float64(r.route(col)) }
func (r *RoutingRowReader) Str(col int) string      { return r.inner.Str(r.route(col)) }
func (r *RoutingRowReader) Utf8(col int) string     { return r.inner.Utf8(r.route(col)) }
func (r *RoutingRowReader) Any(col int) any         { return r.inner.Any(r.route(col)) }

// Equal reports whether r and other route to the same underlying reader
// through the same column mapping. Routing wrappers compare by
// delegating to the wrapped reader's identity rather than synthesizing
// their own value-level equality, since two different routings over two
// different readers could otherwise produce identical values by
// coincidence.
func (r *RoutingRowReader) Equal(other *RoutingRowReader) bool {
	if other == nil || r.inner != other.inner || len(r.cols) != len(other.cols) {
		return false
	}
	for i := range r.cols {
		if r.cols[i] != other.cols[i] {
			return false
		}
	}
	return true
}
