package builder

import (
	"fmt"

	"github.com/vecio/colvec/column"
	"github.com/vecio/colvec/errs"
	"github.com/vecio/colvec/internal/options"
	"github.com/vecio/colvec/wire"
)

// ColumnSpec names one schema column and the element type its values
// decode to.
type ColumnSpec struct {
	Name string
	Type column.ElementType
}

// Option configures a Builder at construction time.
type Option = options.Option[*Builder]

// WithDictThreshold overrides the default dictionary-selection
// threshold (half the column length, capped at 255) with a fixed value
// applied to every string column the builder encodes.
func WithDictThreshold(n int) Option {
	return options.NoError(func(b *Builder) { b.dictThreshold = n })
}

// WithCompression selects the codec Simple-string and Dictionary blobs
// compress their string entries with. It has no effect on numeric or
// bool columns, which are never compressed. The default is the zero
// CompressionType, which, like wire.CompressionNone, stores entries
// uncompressed.
func WithCompression(codec wire.CompressionType) Option {
	return options.NoError(func(b *Builder) { b.codec = codec })
}

// Builder accumulates rows against a fixed schema and, once the stream
// ends, encodes each column independently using the encoding selection
// policy (Empty/Constant/Dictionary/Simple).
type Builder struct {
	schema        []ColumnSpec
	stages        []*columnStage
	dictThreshold int
	codec         wire.CompressionType
}

// New starts a Builder for schema. Columns are encoded in schema order;
// Build returns one blob per name.
func New(schema []ColumnSpec, opts ...Option) *Builder {
	b := &Builder{schema: schema}
	b.stages = make([]*columnStage, len(schema))
	for i, spec := range schema {
		b.stages[i] = newColumnStage(spec.Type)
	}

	_ = options.Apply(b, opts...)

	return b
}

// AddRow appends one row to every column's staging buffer. If row
// reports its own column count (via an optional Len() int method) and
// it disagrees with the schema width, AddRow returns
// ErrColumnCountMismatch without consuming the row.
func (b *Builder) AddRow(row RowReader) error {
	if lr, ok := row.(lenReporter); ok && lr.Len() != len(b.schema) {
		return errs.ErrColumnCountMismatch
	}

	for i, stage := range b.stages {
		stage.append(row, i)
	}

	return nil
}

// Build resolves every column's encoding and returns the result as a
// name-to-blob mapping. The Builder remains usable for inspection
// afterward but should not be fed further rows.
func (b *Builder) Build() (map[string][]byte, error) {
	out := make(map[string][]byte, len(b.schema))

	for i, spec := range b.schema {
		blob, err := b.stages[i].encode(b.dictThreshold, b.codec)
		if err != nil {
			return nil, fmt.Errorf("builder: column %q: %w", spec.Name, err)
		}
		out[spec.Name] = blob
	}

	return out, nil
}
