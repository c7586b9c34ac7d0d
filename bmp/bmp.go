/*
Package bmp implements the minimal BMP container used to exchange canonical
texture pixels with image editors.

Only one layout is written or accepted: a 14 byte file header followed by a
40 byte BITMAPINFOHEADER, one plane, 32 bits per pixel and no compression.
Pixel rows are stored bottom row first, each pixel as little-endian 0xAARRGGBB
which is the same layout as texture.Pixel.
*/
package bmp

import (
	"errors"
	"fmt"

	"github.com/bodgit/n64rawgfx/texture"
)

const (
	// Magic is "BM" read as a little-endian uint16.
	Magic = 0x4d42

	fileHeaderSize = 14
	infoHeaderSize = 0x28

	// HeaderSize is the size of the complete header written by Encode.
	HeaderSize = fileHeaderSize + infoHeaderSize

	bitsPerPixel  = 32
	bytesPerPixel = bitsPerPixel / 8

	// MaxPixels is the largest width * height read or written.
	MaxPixels = 1 << 24
)

var (
	errNotEnough   = errors.New("bmp: not enough image data")
	errBadMagic    = errors.New("bmp: invalid magic")
	errUnsupported = errors.New("bmp: unsupported bitmap")
)

// Header is the combined file and info header. Fields are stored
// little-endian with no padding.
type Header struct {
	Magic           uint16 // Always Magic
	FileSize        uint32 // Offset + ImageSize
	Reserved1       uint16
	Reserved2       uint16
	Offset          uint32 // Offset of the pixel data
	HeaderSize      uint32 // Size of the info header, at least 0x28
	Width           int32
	Height          int32 // Positive, rows are stored bottom-up
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32 // Not trusted when reading, some tools get it wrong
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// NewHeader returns the header for a width by height bitmap.
func NewHeader(width, height int) Header {
	size := uint32(width * height * bytesPerPixel)
	return Header{
		Magic:        Magic,
		FileSize:     HeaderSize + size,
		Offset:       HeaderSize,
		HeaderSize:   infoHeaderSize,
		Width:        int32(width),
		Height:       int32(height),
		Planes:       1,
		BitsPerPixel: bitsPerPixel,
		ImageSize:    size,
	}
}

// Validate checks the header describes a bitmap this package can read.
func (h Header) Validate() error {
	switch {
	case h.Magic != Magic:
		return errBadMagic
	case h.HeaderSize < infoHeaderSize:
		return fmt.Errorf("%w: info header size %d", errUnsupported, h.HeaderSize)
	case h.Width < 1 || h.Height < 1 || int64(h.Width)*int64(h.Height) > MaxPixels:
		return fmt.Errorf("%w: dimensions %dx%d", errUnsupported, h.Width, h.Height)
	case h.Planes != 1:
		return fmt.Errorf("%w: %d planes", errUnsupported, h.Planes)
	case h.BitsPerPixel != bitsPerPixel:
		return fmt.Errorf("%w: %d bits per pixel", errUnsupported, h.BitsPerPixel)
	case h.Compression != 0:
		return fmt.Errorf("%w: compression %d", errUnsupported, h.Compression)
	case h.Offset < fileHeaderSize+h.HeaderSize:
		return fmt.Errorf("%w: pixel offset %d", errUnsupported, h.Offset)
	}
	return nil
}

// IsUnsupported reports whether err was returned because the bitmap is not a
// 32-bit uncompressed bitmap, as opposed to being truncated or corrupt.
func IsUnsupported(err error) bool {
	return errors.Is(err, errUnsupported) || errors.Is(err, errBadMagic)
}

// Bitmap is a width by height run of canonical pixels, top row first.
type Bitmap struct {
	Width  int
	Height int
	Pix    []texture.Pixel
}
