package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNibblesAt(t *testing.T) {
	n := Nibbles{0xf0, 0x1e}
	assert.Equal(t, 4, n.Len())
	assert.Equal(t, uint8(0x0f), n.At(0))
	assert.Equal(t, uint8(0x00), n.At(1))
	assert.Equal(t, uint8(0x01), n.At(2))
	assert.Equal(t, uint8(0x0e), n.At(3))
}

func TestNibblesSet(t *testing.T) {
	n := make(Nibbles, 2)
	n.Set(0, 0x0a)
	assert.Equal(t, Nibbles{0xa0, 0x00}, n)
	n.Set(1, 0x05)
	assert.Equal(t, Nibbles{0xa5, 0x00}, n)
	n.Set(3, 0xff) // Only the low nibble is stored
	assert.Equal(t, Nibbles{0xa5, 0x0f}, n)
	n.Set(0, 0x01)
	assert.Equal(t, Nibbles{0x15, 0x0f}, n)

	for i := 0; i < n.Len(); i++ {
		n.Set(i, uint8(i+3))
		assert.Equal(t, uint8(i+3), n.At(i))
	}
}
