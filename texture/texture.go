/*
Package texture implements the N64 raw texture pixel codec.

Raw texture data is a flat run of packed samples at a given depth. Decode
converts it to canonical pixels, a 32-bit value with independent 8-bit
alpha, red, green and blue channels, and Encode converts canonical pixels
back. Not every format is available at every depth, and fewer combinations
can be encoded than decoded:

	Format  4-bit   8-bit   16-bit  32-bit
	RGBA    ------  ------  YES     YES
	YUV     ------  ------  ------  ------
	CI      decode  decode  ------  ------
	IA      ------  ------  YES     ------
	I       YES     YES     ------  ------

CI textures are indices into a palette of 16 (4-bit) or 256 (8-bit) colors.
The palette is itself stored as RGBA at 16 or 32 bits per color and must be
resolved with ResolvePalette before the indices can be decoded.

Pixels are always processed in the order they are stored. At 4-bit depth
two pixels share a byte, the even pixel in the upper nibble.
*/
package texture

import (
	"fmt"
	"strconv"
	"strings"
)

// Format is the channel layout of a texture.
type Format int

// Supported texture formats.
const (
	RGBA Format = iota
	YUV
	CI
	IA
	I
	numFormats
)

var formatNames = [...]string{
	RGBA: "RGBA",
	YUV:  "YUV",
	CI:   "CI",
	IA:   "IA",
	I:    "I",
}

var _ [int(numFormats) - len(formatNames)]struct{}
var _ [len(formatNames) - int(numFormats)]struct{}

func (f Format) String() string {
	if f < 0 || f >= numFormats {
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
	return formatNames[f]
}

// ParseFormat returns the Format named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("texture: unknown format %q", s)
}

// Depth is the packed width of one pixel.
type Depth int

// Supported depths.
const (
	Depth4 Depth = iota
	Depth8
	Depth16
	Depth32
	numDepths
)

// Bits returns the number of bits used by one pixel.
func (d Depth) Bits() int {
	return 4 << uint(d)
}

func (d Depth) String() string {
	if d < 0 || d >= numDepths {
		return "Depth(" + strconv.Itoa(int(d)) + ")"
	}
	return strconv.Itoa(d.Bits()) + "-bit"
}

// ParseDepth returns the Depth for the given number of bits.
func ParseDepth(bits int) (Depth, error) {
	for d := Depth4; d < numDepths; d++ {
		if d.Bits() == bits {
			return d, nil
		}
	}
	return 0, fmt.Errorf("texture: unsupported depth %d", bits)
}

// Direction selects either decoding or encoding.
type Direction int

// Conversion directions.
const (
	// Export converts raw texture data to canonical pixels.
	Export Direction = iota
	// Import converts canonical pixels to raw texture data.
	Import
)

func (d Direction) String() string {
	switch d {
	case Export:
		return "export"
	case Import:
		return "import"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// EncodedSize returns the number of bytes used by count pixels at depth d.
func EncodedSize(d Depth, count int) int {
	switch d {
	case Depth4:
		return (count + 1) >> 1
	case Depth8:
		return count
	case Depth16:
		return count << 1
	case Depth32:
		return count << 2
	}
	return 0
}

// PaletteSize returns the number of palette entries addressable by a CI
// texture at depth d, or zero if d cannot be used for indices.
func PaletteSize(d Depth) int {
	switch d {
	case Depth4:
		return 16
	case Depth8:
		return 256
	}
	return 0
}
