package texture

import (
	"encoding/binary"
	"fmt"

	"github.com/bodgit/n64rawgfx/channel"
)

func decodeRGBA16(dst []Pixel, src []byte, _ Palette) {
	for i := range dst {
		// Packed as RRRRRGGGGGBBBBBA
		v := binary.BigEndian.Uint16(src[i<<1:])
		var a uint8
		if v&0x0001 != 0 {
			a = 0xff
		}
		dst[i] = ARGB(
			a,
			channel.Expand(uint8(v>>11), 5),
			channel.Expand(uint8(v>>6), 5),
			channel.Expand(uint8(v>>1), 5),
		)
	}
}

func decodeRGBA32(dst []Pixel, src []byte, _ Palette) {
	for i := range dst {
		p := src[i<<2 : i<<2+4]
		dst[i] = ARGB(p[3], p[0], p[1], p[2])
	}
}

func decodeCI4(dst []Pixel, src []byte, pal Palette) {
	n := Nibbles(src)
	for i := range dst {
		dst[i] = pal[n.At(i)]
	}
}

func decodeCI8(dst []Pixel, src []byte, pal Palette) {
	for i := range dst {
		dst[i] = pal[src[i]]
	}
}

func decodeIA16(dst []Pixel, src []byte, _ Palette) {
	for i := range dst {
		dst[i] = Gray(src[i<<1], src[i<<1+1])
	}
}

func decodeI4(dst []Pixel, src []byte, _ Palette) {
	n := Nibbles(src)
	for i := range dst {
		dst[i] = Gray(channel.Expand(n.At(i), 4), 0xff)
	}
}

func decodeI8(dst []Pixel, src []byte, _ Palette) {
	for i := range dst {
		dst[i] = Gray(src[i], 0xff)
	}
}

// Decode converts the raw texture data in src, of format f at depth d, into
// len(dst) canonical pixels. src must hold exactly EncodedSize(d, len(dst))
// bytes. For CI textures pal must be the resolved palette of
// PaletteSize(d) colors, otherwise it is ignored.
//
// src is never modified.
func Decode(dst []Pixel, src []byte, f Format, d Depth, pal Palette) error {
	if err := Check(Export, f, d); err != nil {
		return err
	}
	if err := CheckCount(d, len(dst)); err != nil {
		return err
	}
	if n := EncodedSize(d, len(dst)); len(src) != n {
		return fmt.Errorf("%w: have %d bytes, want %d", ErrBufferSize, len(src), n)
	}
	if f == CI && len(pal) != PaletteSize(d) {
		return fmt.Errorf("%w: have %d colors, want %d", ErrPalette, len(pal), PaletteSize(d))
	}

	decoders[f][d](dst, src, pal)

	return nil
}

// ResolvePalette decodes a raw palette stored as RGBA at depth pd into the
// palette used by CI textures at depth d.
func ResolvePalette(raw []byte, pd, d Depth) (Palette, error) {
	n := PaletteSize(d)
	if n == 0 {
		return nil, &UnsupportedError{Direction: Export, Format: CI, Depth: d}
	}
	if !Supported(Export, RGBA, pd) {
		return nil, fmt.Errorf("%w: palette depth %s", ErrPalette, pd)
	}

	pal := make(Palette, n)
	if err := Decode(pal, raw, RGBA, pd, nil); err != nil {
		return nil, err
	}

	return pal, nil
}

// DecodeIndexed resolves the raw palette rawPal, stored as RGBA at depth pd,
// and then decodes the CI texture src at depth d into dst.
func DecodeIndexed(dst []Pixel, src []byte, d Depth, rawPal []byte, pd Depth) error {
	if err := Check(Export, CI, d); err != nil {
		return err
	}

	pal, err := ResolvePalette(rawPal, pd, d)
	if err != nil {
		return err
	}

	return Decode(dst, src, CI, d, pal)
}
