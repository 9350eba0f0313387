package rsfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeVersionList(t *testing.T) {
	data := []byte{0x00, 0x05, 0x00, 0x0A, 0x01, 0x00}
	vl := DecodeVersionList(data)
	assert.Equal(t, 3, vl.Len())

	v, ok := vl.Get(0)
	assert.True(t, ok)
	assert.Equal(t, uint32(5), v)

	v, ok = vl.Get(2)
	assert.True(t, ok)
	assert.Equal(t, uint32(256), v)

	_, ok = vl.Get(3)
	assert.False(t, ok)
}

func TestDecodeCrcList(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x01, 0xDE, 0xAD, 0xBE, 0xEF}
	cl := DecodeCrcList(data)
	assert.Equal(t, 2, cl.Len())

	c, ok := cl.Get(0)
	assert.True(t, ok)
	assert.Equal(t, uint32(1), c)

	c, ok = cl.Get(1)
	assert.True(t, ok)
	assert.Equal(t, uint32(0xDEADBEEF), c)
}
