package colvec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vecio/colvec"
	"github.com/vecio/colvec/builder"
	"github.com/vecio/colvec/column"
	"github.com/vecio/colvec/wire"
)

func TestOpenRoundTripsEndToEnd(t *testing.T) {
	schema := []builder.ColumnSpec{
		{Name: "name", Type: column.String},
		{Name: "age", Type: column.Int32},
	}
	b := builder.New(schema)

	require.NoError(t, b.AddRow(builder.NewTupleRowReader("Matthew Perry", int32(18))))
	require.NoError(t, b.AddRow(builder.NewTupleRowReader("Michelle Pfeiffer", nil)))
	require.NoError(t, b.AddRow(builder.NewTupleRowReader("George C", int32(59))))
	require.NoError(t, b.AddRow(builder.NewTupleRowReader("Rich Sherman", int32(26))))
	require.NoError(t, b.AddRow(builder.NewTupleRowReader(nil, nil)))

	blobs, err := b.Build()
	require.NoError(t, err)

	name, err := colvec.Open[string](column.String, blobs["name"], 0)
	require.NoError(t, err)
	require.Equal(t, 5, name.Length())
	require.Equal(t, "George C", name.Get(2))
	require.False(t, name.IsAvailable(4))

	age, err := colvec.Open[int32](column.Int32, blobs["age"], 0)
	require.NoError(t, err)
	require.Equal(t, int32(18), age.Get(0))
	require.False(t, age.IsAvailable(1))
	require.False(t, age.IsAvailable(4))
}

func TestOpenAnyForTypeErasedIteration(t *testing.T) {
	schema := []builder.ColumnSpec{{Name: "v", Type: column.Float64}}
	b := builder.New(schema)
	require.NoError(t, b.AddRow(builder.NewTupleRowReader(1.5)))
	require.NoError(t, b.AddRow(builder.NewTupleRowReader(2.5)))

	blobs, err := b.Build()
	require.NoError(t, err)

	h, err := colvec.OpenAny(column.Float64, blobs["v"], 0)
	require.NoError(t, err)
	require.Equal(t, 2, h.Length())
	require.Equal(t, 1.5, h.GetBoxed(0))
}

func TestOpenOnEmptyRegionUsesLengthHint(t *testing.T) {
	h, err := colvec.Open[int64](column.Int64, nil, 7)
	require.NoError(t, err)
	require.Equal(t, 7, h.Length())
	for i := 0; i < 7; i++ {
		require.False(t, h.IsAvailable(i))
	}
}

func TestRegistryIsExtensible(t *testing.T) {
	require.NotNil(t, colvec.Registry())

	b := builder.New([]builder.ColumnSpec{{Name: "v", Type: column.Int64}})
	require.NoError(t, b.AddRow(builder.NewTupleRowReader(int64(3))))
	require.NoError(t, b.AddRow(builder.NewTupleRowReader(int64(4))))
	blobs, err := b.Build()
	require.NoError(t, err)

	custom := column.ElementType(200)
	called := false
	colvec.Registry().Register(custom, func(_ wire.Header, _ []byte, _ int) (column.AnyHandle, error) {
		called = true
		return colvec.OpenAny(column.Int64, blobs["v"], 0)
	})

	h, err := colvec.OpenAny(custom, blobs["v"], 0)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, 2, h.Length())
	require.Equal(t, int64(4), h.GetBoxed(1))
}
