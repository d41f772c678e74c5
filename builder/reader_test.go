package builder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vecio/colvec/builder"
)

func TestTupleRowReaderPresence(t *testing.T) {
	r := builder.NewTupleRowReader("alice", nil, int32(7))
	require.True(t, r.IsPresent(0))
	require.False(t, r.IsPresent(1))
	require.True(t, r.IsPresent(2))
	require.Equal(t, "alice", r.Str(0))
	require.Equal(t, int32(7), r.Int32(2))
	require.Equal(t, 3, r.Len())
}

func TestStringRowReaderParsesOnDemand(t *testing.T) {
	r := builder.NewStringRowReader("42", "", "3.5", "true")
	require.True(t, r.IsPresent(0))
	require.False(t, r.IsPresent(1))
	require.Equal(t, int32(42), r.Int32(0))
	require.Equal(t, 3.5, r.Float64(2))
	require.True(t, r.Bool(3))
}

func TestSingleValueRowReader(t *testing.T) {
	r := builder.NewSingleValueRowReader(int64(99))
	require.True(t, r.IsPresent(0))
	require.Equal(t, int64(99), r.Int64(0))

	missing := builder.NewSingleValueRowReader(nil)
	require.False(t, missing.IsPresent(0))
}

func TestSequenceRowReaderBacksArbitraryAccessor(t *testing.T) {
	data := map[int]string{0: "x", 2: "z"}
	r := builder.NewSequenceRowReader(func(col int) (any, bool) {
		v, ok := data[col]
		return v, ok
	})

	require.True(t, r.IsPresent(0))
	require.False(t, r.IsPresent(1))
	require.Equal(t, "z", r.Str(2))
}

func TestRoutingRowReaderRemapsColumns(t *testing.T) {
	inner := builder.NewTupleRowReader("a", "b", "c")
	r := builder.NewRoutingRowReader(inner, 2, 0)

	require.Equal(t, "c", r.Str(0))
	require.Equal(t, "a", r.Str(1))
}

func TestRoutingRowReaderEqual(t *testing.T) {
	inner := builder.NewTupleRowReader("a", "b")
	r1 := builder.NewRoutingRowReader(inner, 1, 0)
	r2 := builder.NewRoutingRowReader(inner, 1, 0)
	r3 := builder.NewRoutingRowReader(inner, 0, 1)
	otherInner := builder.NewTupleRowReader("a", "b")
	r4 := builder.NewRoutingRowReader(otherInner, 1, 0)

	require.True(t, r1.Equal(r2))
	require.False(t, r1.Equal(r3))
	require.False(t, r1.Equal(r4))
	require.False(t, r1.Equal(nil))
}

func TestTupleRowReaderAnyCarriesExtensionTypes(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	r := builder.NewTupleRowReader(ts)
	require.Equal(t, ts, r.Any(0))
}
