package handler

import (
	"bytes"
	"sync"
)

const (
	// responseBufferSize fits a full open response: animation tape plus a
	// page of history entries.
	responseBufferSize = 4096

	// maxPooledBufferSize is the largest buffer worth keeping; anything
	// bigger is left for the GC.
	maxPooledBufferSize = 64 * 1024
)

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

// getBuffer retrieves a buffer from the pool
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool, dropping buffers
// that grew past maxPooledBufferSize
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
