package handler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutBuffer_DropsOversizedBuffers(t *testing.T) {
	small := getBuffer()
	small.WriteString(`{"count":1}`)
	putBuffer(small)
	assert.Zero(t, small.Len(), "pooled buffers are reset")

	big := bytes.NewBuffer(make([]byte, 0, maxPooledResponseBuffer+1))
	big.WriteString("[]")
	putBuffer(big)
	assert.Equal(t, 2, big.Len(), "oversized buffers are not reset or kept")
}
