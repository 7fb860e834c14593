package common

import (
	"sync"
)

// FreeBytes is a wrapper around bytes, with the free method to return the
// bytes to the pool.
type FreeBytes struct {
	Bytes []byte
}

// Free returns the bytes back to the FreeBytesPool.
func (fb *FreeBytes) Free() {
	fb.Bytes = fb.Bytes[:0]
	FreeBytesPool.Put(fb)
}

// NewFreeBytes returns a FreeBytes from the pool. Will allocate if the pool
// hands back one that doesn't have bytes allocated.
func NewFreeBytes() *FreeBytes {
	fb := FreeBytesPool.Get().(*FreeBytes)

	if fb.Bytes == nil {
		// 64 is the minimum size needed to concatenate two hashes,
		// which is what these buffers mostly get used for
		fb.Bytes = make([]byte, 0, 64)
	}

	return fb
}

// FreeBytesPool is the pool of bytes to recycle and relieve gc pressure.
var FreeBytesPool = sync.Pool{
	New: func() interface{} { return new(FreeBytes) },
}
