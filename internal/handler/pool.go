package handler

import (
	"bytes"
	"sync"
)

const (
	// a single item view encodes to well under this
	initialResponseBufferSize = 1024
	// full item listings grow buffers past this; those are left for the GC
	maxPooledResponseBuffer = 64 << 10
)

var responseBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialResponseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

// putBuffer hands buf back for the next response unless it grew too large
// to keep around
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledResponseBuffer {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}
