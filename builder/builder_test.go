package builder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vecio/colvec/builder"
	"github.com/vecio/colvec/column"
	"github.com/vecio/colvec/fbtable"
	"github.com/vecio/colvec/wire"
)

func TestBuilderScenarioOneNamesAndAges(t *testing.T) {
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

	name, err := column.Typed[string](column.NewRegistry(), column.String, blobs["name"], 0)
	require.NoError(t, err)
	require.Equal(t, 5, name.Length())
	require.Equal(t, "Matthew Perry", name.Get(0))
	require.Equal(t, "Michelle Pfeiffer", name.Get(1))
	require.Equal(t, "George C", name.Get(2))
	require.Equal(t, "Rich Sherman", name.Get(3))
	require.False(t, name.IsAvailable(4))

	age, err := column.Typed[int32](column.NewRegistry(), column.Int32, blobs["age"], 0)
	require.NoError(t, err)
	require.Equal(t, 5, age.Length())
	require.Equal(t, int32(18), age.Get(0))
	require.False(t, age.IsAvailable(1))
	require.Equal(t, int32(59), age.Get(2))
	require.Equal(t, int32(26), age.Get(3))
	require.False(t, age.IsAvailable(4))
}

func TestBuilderScenarioTwoInt32WidensTo16Bits(t *testing.T) {
	schema := []builder.ColumnSpec{{Name: "v", Type: column.Int32}}
	b := builder.New(schema)

	for i := int32(1); i <= 300; i++ {
		require.NoError(t, b.AddRow(builder.NewTupleRowReader(i)))
	}

	blobs, err := b.Build()
	require.NoError(t, err)
	tab := fbtable.GetRootAsSimplePrimitiveVector(blobs["v"][wire.HeaderSize:], 0)
	require.Equal(t, byte(16), tab.NBits())

	h, err := column.Typed[int32](column.NewRegistry(), column.Int32, blobs["v"], 0)
	require.NoError(t, err)
	require.Equal(t, 300, h.Length())
	for i := 0; i < 300; i++ {
		require.Equal(t, int32(i+1), h.Get(i))
	}
}

func TestBuilderScenarioThreeBoolAlternatingPacksOneBit(t *testing.T) {
	schema := []builder.ColumnSpec{{Name: "flag", Type: column.Bool}}
	b := builder.New(schema)

	for i := 0; i < 1000; i++ {
		require.NoError(t, b.AddRow(builder.NewTupleRowReader(i%2 == 0)))
	}

	blobs, err := b.Build()
	require.NoError(t, err)
	tab := fbtable.GetRootAsSimplePrimitiveVector(blobs["flag"][wire.HeaderSize:], 0)
	require.Equal(t, byte(1), tab.NBits())

	h, err := column.Typed[bool](column.NewRegistry(), column.Bool, blobs["flag"], 0)
	require.NoError(t, err)
	require.Equal(t, 1000, h.Length())
	for i := 0; i < 1000; i++ {
		require.Equal(t, i%2 == 0, h.Get(i))
	}
}

func TestBuilderScenarioFourConstantStringStaysCheap(t *testing.T) {
	schema := []builder.ColumnSpec{{Name: "s", Type: column.String}}
	b := builder.New(schema)

	for i := 0; i < 100; i++ {
		require.NoError(t, b.AddRow(builder.NewTupleRowReader("abc")))
	}

	blobs, err := b.Build()
	require.NoError(t, err)
	require.LessOrEqual(t, len(blobs["s"]), 40)

	h, err := column.Typed[string](column.NewRegistry(), column.String, blobs["s"], 0)
	require.NoError(t, err)
	require.Equal(t, 100, h.Length())
	for i := 0; i < 100; i++ {
		require.Equal(t, "abc", h.Get(i))
	}
}

func TestBuilderScenarioFiveDictFromSmallPalette(t *testing.T) {
	schema := []builder.ColumnSpec{{Name: "color", Type: column.String}}
	b := builder.New(schema)

	palette := []string{"red", "green", "blue", "yellow"}
	for i := 0; i < 100; i++ {
		require.NoError(t, b.AddRow(builder.NewTupleRowReader(palette[i%len(palette)])))
	}

	blobs, err := b.Build()
	require.NoError(t, err)

	header, err := wire.Decode(blobs["color"])
	require.NoError(t, err)
	require.Equal(t, wire.Dict, header.Major)

	h, err := column.Typed[string](column.NewRegistry(), column.String, blobs["color"], 0)
	require.NoError(t, err)
	require.Equal(t, 100, h.Length())
	for i := 0; i < 100; i++ {
		require.Equal(t, palette[i%len(palette)], h.Get(i))
	}
}

func TestBuilderDictionaryThresholdEdge(t *testing.T) {
	// length=10, default threshold = min(255, 10/2) = 5.
	schema := []builder.ColumnSpec{{Name: "s", Type: column.String}}

	atThreshold := builder.New(schema)
	values := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < 10; i++ {
		require.NoError(t, atThreshold.AddRow(builder.NewTupleRowReader(values[i%len(values)])))
	}
	blobs, err := atThreshold.Build()
	require.NoError(t, err)
	header, err := wire.Decode(blobs["s"])
	require.NoError(t, err)
	require.Equal(t, wire.Dict, header.Major)
	h, err := column.Typed[string](column.NewRegistry(), column.String, blobs["s"], 0)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.Equal(t, values[i%len(values)], h.Get(i))
	}

	overThreshold := builder.New(schema)
	values = append(values, "f")
	for i := 0; i < 10; i++ {
		require.NoError(t, overThreshold.AddRow(builder.NewTupleRowReader(values[i%len(values)])))
	}
	blobs, err = overThreshold.Build()
	require.NoError(t, err)
	header, err = wire.Decode(blobs["s"])
	require.NoError(t, err)
	require.Equal(t, wire.Simple, header.Major)
	h, err = column.Typed[string](column.NewRegistry(), column.String, blobs["s"], 0)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.Equal(t, values[i%len(values)], h.Get(i))
	}
}

func TestBuilderEmptyColumnRoundTrips(t *testing.T) {
	schema := []builder.ColumnSpec{{Name: "v", Type: column.Int64}}
	b := builder.New(schema)

	blobs, err := b.Build()
	require.NoError(t, err)

	h, err := column.Typed[int64](column.NewRegistry(), column.Int64, blobs["v"], 0)
	require.NoError(t, err)
	require.Equal(t, 0, h.Length())
}

func TestBuilderAllMissingColumnRoundTrips(t *testing.T) {
	schema := []builder.ColumnSpec{{Name: "v", Type: column.Float64}}
	b := builder.New(schema)

	for i := 0; i < 4; i++ {
		require.NoError(t, b.AddRow(builder.NewTupleRowReader(nil)))
	}

	blobs, err := b.Build()
	require.NoError(t, err)

	h, err := column.Typed[float64](column.NewRegistry(), column.Float64, blobs["v"], 0)
	require.NoError(t, err)
	require.Equal(t, 4, h.Length())
	for i := 0; i < 4; i++ {
		require.False(t, h.IsAvailable(i))
	}
}

func TestBuilderNegativeIntegerForcesNativeWidth(t *testing.T) {
	schema := []builder.ColumnSpec{{Name: "v", Type: column.Int32}}
	b := builder.New(schema)

	require.NoError(t, b.AddRow(builder.NewTupleRowReader(int32(-1))))
	require.NoError(t, b.AddRow(builder.NewTupleRowReader(int32(10))))

	blobs, err := b.Build()
	require.NoError(t, err)
	tab := fbtable.GetRootAsSimplePrimitiveVector(blobs["v"][wire.HeaderSize:], 0)
	require.Equal(t, byte(32), tab.NBits())

	h, err := column.Typed[int32](column.NewRegistry(), column.Int32, blobs["v"], 0)
	require.NoError(t, err)
	require.Equal(t, int32(-1), h.Get(0))
	require.Equal(t, int32(10), h.Get(1))
}

func TestBuilderDateTimeColumnRoundTrips(t *testing.T) {
	schema := []builder.ColumnSpec{{Name: "ts", Type: column.DateTime}}
	b := builder.New(schema)

	t1 := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	t2 := time.Date(2024, 6, 7, 8, 9, 10, 0, time.UTC)
	require.NoError(t, b.AddRow(builder.NewTupleRowReader(t1)))
	require.NoError(t, b.AddRow(builder.NewTupleRowReader(t2)))

	blobs, err := b.Build()
	require.NoError(t, err)

	h, err := column.Typed[time.Time](column.NewRegistry(), column.DateTime, blobs["ts"], 0)
	require.NoError(t, err)
	require.True(t, h.Get(0).Equal(t1))
	require.True(t, h.Get(1).Equal(t2))
}

func TestBuilderColumnCountMismatch(t *testing.T) {
	schema := []builder.ColumnSpec{{Name: "a", Type: column.Int32}, {Name: "b", Type: column.Int32}}
	b := builder.New(schema)

	err := b.AddRow(builder.NewTupleRowReader(int32(1)))
	require.Error(t, err)
}

func TestBuilderWithDictThresholdOverride(t *testing.T) {
	schema := []builder.ColumnSpec{{Name: "s", Type: column.String}}
	b := builder.New(schema, builder.WithDictThreshold(1))

	require.NoError(t, b.AddRow(builder.NewTupleRowReader("a")))
	require.NoError(t, b.AddRow(builder.NewTupleRowReader("b")))
	require.NoError(t, b.AddRow(builder.NewTupleRowReader("a")))

	blobs, err := b.Build()
	require.NoError(t, err)

	h, err := column.Typed[string](column.NewRegistry(), column.String, blobs["s"], 0)
	require.NoError(t, err)
	require.Equal(t, "a", h.Get(0))
	require.Equal(t, "b", h.Get(1))
	require.Equal(t, "a", h.Get(2))
}

func TestBuilderWithCompressionAppliesToStringColumnsOnly(t *testing.T) {
	schema := []builder.ColumnSpec{
		{Name: "tag", Type: column.String},
		{Name: "count", Type: column.Int64},
	}
	b := builder.New(schema, builder.WithCompression(wire.CompressionZstd), builder.WithDictThreshold(1))

	values := []string{"alpha", "bravo", "charlie", "alpha", "delta", "alpha"}
	for i, v := range values {
		require.NoError(t, b.AddRow(builder.NewTupleRowReader(v, int64(i))))
	}

	blobs, err := b.Build()
	require.NoError(t, err)

	header, err := wire.Decode(blobs["tag"])
	require.NoError(t, err)
	require.Equal(t, wire.Simple, header.Major)

	tag, err := column.Typed[string](column.NewRegistry(), column.String, blobs["tag"], 0)
	require.NoError(t, err)
	for i, v := range values {
		require.Equal(t, v, tag.Get(i))
	}

	// Numeric columns never carry a codec slot, compression option or not.
	count, err := column.Typed[int64](column.NewRegistry(), column.Int64, blobs["count"], 0)
	require.NoError(t, err)
	for i := range values {
		require.Equal(t, int64(i), count.Get(i))
	}
}

func TestBuilderWithCompressionAppliesToDictStringColumn(t *testing.T) {
	schema := []builder.ColumnSpec{
		{Name: "city", Type: column.String},
	}
	b := builder.New(schema, builder.WithCompression(wire.CompressionS2))

	values := []string{"Boston", "Boston", "Chicago", "Boston", "Chicago", "Denver", "Boston"}
	for _, v := range values {
		require.NoError(t, b.AddRow(builder.NewTupleRowReader(v)))
	}

	blobs, err := b.Build()
	require.NoError(t, err)

	header, err := wire.Decode(blobs["city"])
	require.NoError(t, err)
	require.Equal(t, wire.Dict, header.Major)

	city, err := column.Typed[string](column.NewRegistry(), column.String, blobs["city"], 0)
	require.NoError(t, err)
	require.Equal(t, len(values), city.Length())
	for i, v := range values {
		require.Equal(t, v, city.Get(i))
	}
}
