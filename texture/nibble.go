package texture

// Nibbles is a packed array of 4-bit values, two per byte. The even element
// is held in the upper nibble.
type Nibbles []byte

// Len returns the number of 4-bit elements.
func (n Nibbles) Len() int {
	return len(n) << 1
}

// At returns element i.
func (n Nibbles) At(i int) uint8 {
	b := n[i>>1]
	if i&1 == 0 {
		return b >> 4
	}
	return b & 0x0f
}

// Set stores the low 4 bits of v as element i, leaving the other element
// sharing the byte untouched.
func (n Nibbles) Set(i int, v uint8) {
	v &= 0x0f
	if i&1 == 0 {
		n[i>>1] = n[i>>1]&0x0f | v<<4
	} else {
		n[i>>1] = n[i>>1]&0xf0 | v
	}
}
