// Package tlbuf approximates per-thread scratch buffers atop
// internal/pool.ByteBufferPool. Go has no real thread-local storage;
// sync.Pool's per-P affinity is the idiomatic Go substitute, so encoders
// borrow a buffer here instead of allocating fresh scratch space per
// call.
package tlbuf

import "github.com/vecio/colvec/internal/pool"

// DefaultCapacity is the initial capacity a borrowed scratch buffer
// starts with, at a 64 KiB initial capacity.
const DefaultCapacity = 64 * 1024

var scratchPool = pool.NewByteBufferPool(DefaultCapacity, 8*DefaultCapacity)

// Get borrows a reset, ready-to-write scratch buffer. Callers must return
// it via Put once the encoded bytes have been copied out -- the returned
// buffer's backing array is reused by the next Get from the same
// goroutine's pool shard.
func Get() *pool.ByteBuffer {
	return scratchPool.Get()
}

// Put returns a scratch buffer borrowed from Get. Buffers grown past the
// pool's max threshold are discarded rather than retained, so a single
// oversized encode does not permanently inflate the pool.
func Put(bb *pool.ByteBuffer) {
	scratchPool.Put(bb)
}

// Reset clears this package's pool, forcing every subsequent Get to
// allocate a fresh buffer. Exposed for tests that need to observe a
// buffer's state independent of prior test runs.
func Reset() {
	scratchPool = pool.NewByteBufferPool(DefaultCapacity, 8*DefaultCapacity)
}
