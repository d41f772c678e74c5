package strview_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vecio/colvec/strview"
)

func TestBytesAndString(t *testing.T) {
	base := []byte("hello, world")
	v := strview.New(base, 7, 5)
	require.Equal(t, []byte("world"), v.Bytes())
	require.Equal(t, "world", v.String())
	require.Equal(t, 5, v.Len())
}

func TestFromString(t *testing.T) {
	v := strview.FromString("abc")
	require.Equal(t, "abc", v.String())
}

func TestEqualIsByteIdentical(t *testing.T) {
	a := strview.New([]byte("xxfoo"), 2, 3)
	b := strview.New([]byte("foo"), 0, 3)
	c := strview.New([]byte("bar"), 0, 3)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestLessIsUnsignedLexicographic(t *testing.T) {
	a := strview.FromString("abc")
	b := strview.FromString("abd")
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.False(t, a.Less(a))
}

func TestHash32IsCachedAndStable(t *testing.T) {
	v := strview.FromString("a lazily hashed string view")
	h1 := v.Hash32()
	h2 := v.Hash32()
	require.Equal(t, h1, h2)
}

func TestHash64IsCachedAndStable(t *testing.T) {
	v := strview.FromString("a lazily hashed string view")
	h1 := v.Hash64()
	h2 := v.Hash64()
	require.Equal(t, h1, h2)
}

func TestHash32And64DifferByValue(t *testing.T) {
	v := strview.FromString("distinguishable hash widths")
	require.NotEqual(t, uint64(v.Hash32()), v.Hash64())
}

func TestEqualStringsHashEqual(t *testing.T) {
	a := strview.FromString("same bytes")
	b := strview.FromString("same bytes")
	require.Equal(t, a.Hash32(), b.Hash32())
	require.Equal(t, a.Hash64(), b.Hash64())
}

func TestEmptyViewHashesDoNotPanic(t *testing.T) {
	v := strview.New([]byte{}, 0, 0)
	require.NotPanics(t, func() {
		v.Hash32()
		v.Hash64()
	})
}
