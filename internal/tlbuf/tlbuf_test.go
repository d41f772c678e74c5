package tlbuf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vecio/colvec/internal/tlbuf"
)

func TestGetReturnsEmptyResetBuffer(t *testing.T) {
	bb := tlbuf.Get()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), tlbuf.DefaultCapacity)
	tlbuf.Put(bb)
}

func TestPutResetsBufferForReuse(t *testing.T) {
	bb := tlbuf.Get()
	bb.MustWrite([]byte("scratch"))
	require.Equal(t, 7, bb.Len())
	tlbuf.Put(bb)

	bb2 := tlbuf.Get()
	require.Equal(t, 0, bb2.Len())
	tlbuf.Put(bb2)
}

func TestResetDiscardsPooledBuffers(t *testing.T) {
	bb := tlbuf.Get()
	bb.MustWrite(make([]byte, tlbuf.DefaultCapacity*2))
	tlbuf.Put(bb)

	tlbuf.Reset()

	bb2 := tlbuf.Get()
	require.Equal(t, 0, bb2.Len())
	tlbuf.Put(bb2)
}
