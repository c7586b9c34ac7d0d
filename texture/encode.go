package texture

import (
	"encoding/binary"
	"fmt"

	"github.com/bodgit/n64rawgfx/channel"
)

func encodeRGBA16(dst []byte, src []Pixel) {
	for i, p := range src {
		v := uint16(channel.Reduce(p.R(), 5))<<11 |
			uint16(channel.Reduce(p.G(), 5))<<6 |
			uint16(channel.Reduce(p.B(), 5))<<1 |
			uint16(p.A()>>7)
		binary.BigEndian.PutUint16(dst[i<<1:], v)
	}
}

func encodeRGBA32(dst []byte, src []Pixel) {
	for i, p := range src {
		b := dst[i<<2 : i<<2+4]
		b[0], b[1], b[2], b[3] = p.R(), p.G(), p.B(), p.A()
	}
}

func intensity(p Pixel) uint8 {
	return channel.Intensity(p.R(), p.G(), p.B())
}

func encodeIA16(dst []byte, src []Pixel) {
	for i, p := range src {
		dst[i<<1] = intensity(p)
		dst[i<<1+1] = p.A()
	}
}

func encodeI4(dst []byte, src []Pixel) {
	n := Nibbles(dst)
	for i, p := range src {
		n.Set(i, channel.Reduce(intensity(p), 4))
	}
}

func encodeI8(dst []byte, src []Pixel) {
	for i, p := range src {
		dst[i] = intensity(p)
	}
}

// Encode converts the canonical pixels in src to raw texture data of format
// f at depth d. dst must hold exactly EncodedSize(d, len(src)) bytes and is
// completely overwritten.
//
// Alpha is kept as a single bit in 16-bit RGBA, and dropped entirely by the
// I format.
func Encode(dst []byte, src []Pixel, f Format, d Depth) error {
	if err := Check(Import, f, d); err != nil {
		return err
	}
	if err := CheckCount(d, len(src)); err != nil {
		return err
	}
	if n := EncodedSize(d, len(src)); len(dst) != n {
		return fmt.Errorf("%w: have %d bytes, want %d", ErrBufferSize, len(dst), n)
	}

	encoders[f][d](dst, src)

	return nil
}
