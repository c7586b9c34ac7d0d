package bmp

import (
	"encoding/binary"
	"io"

	"github.com/bodgit/n64rawgfx/texture"
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	header Header
	bitmap *Bitmap
}

func (d *decoder) readHeader() error {
	var b [HeaderSize]byte

	// Check the magic on its own so short files of other formats are
	// reported as unsupported rather than truncated
	if err := readFull(d.r, b[:2]); err != nil || binary.LittleEndian.Uint16(b[:]) != Magic {
		return errBadMagic
	}
	if err := readFull(d.r, b[2:]); err != nil {
		return err
	}

	h := &d.header
	h.Magic = binary.LittleEndian.Uint16(b[0:])
	h.FileSize = binary.LittleEndian.Uint32(b[2:])
	h.Reserved1 = binary.LittleEndian.Uint16(b[6:])
	h.Reserved2 = binary.LittleEndian.Uint16(b[8:])
	h.Offset = binary.LittleEndian.Uint32(b[10:])
	h.HeaderSize = binary.LittleEndian.Uint32(b[14:])
	h.Width = int32(binary.LittleEndian.Uint32(b[18:]))
	h.Height = int32(binary.LittleEndian.Uint32(b[22:]))
	h.Planes = binary.LittleEndian.Uint16(b[26:])
	h.BitsPerPixel = binary.LittleEndian.Uint16(b[28:])
	h.Compression = binary.LittleEndian.Uint32(b[30:])
	h.ImageSize = binary.LittleEndian.Uint32(b[34:])
	h.XPixelsPerMeter = int32(binary.LittleEndian.Uint32(b[38:]))
	h.YPixelsPerMeter = int32(binary.LittleEndian.Uint32(b[42:]))
	h.ColorsUsed = binary.LittleEndian.Uint32(b[46:])
	h.ColorsImportant = binary.LittleEndian.Uint32(b[50:])

	return h.Validate()
}

func (d *decoder) readPixels() error {
	// Skip any larger info header or gap before the pixel data
	if skip := int64(d.header.Offset) - HeaderSize; skip > 0 {
		if _, err := io.CopyN(io.Discard, d.r, skip); err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
	}

	width, height := int(d.header.Width), int(d.header.Height)
	d.bitmap = &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]texture.Pixel, width*height),
	}

	row := make([]byte, width*bytesPerPixel)
	for y := height - 1; y >= 0; y-- {
		if err := readFull(d.r, row); err != nil {
			return err
		}
		pix := d.bitmap.Pix[y*width : (y+1)*width]
		for x := range pix {
			pix[x] = texture.Pixel(binary.LittleEndian.Uint32(row[x*bytesPerPixel:]))
		}
	}

	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if configOnly {
		return nil
	}

	if err := d.readPixels(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	return nil
}

// Decode reads a bitmap from r, returning its pixels top row first.
func Decode(r io.Reader) (*Bitmap, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.bitmap, nil
}

// DecodeConfig returns the validated header of a bitmap without reading the
// pixel data.
func DecodeConfig(r io.Reader) (Header, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return Header{}, err
	}
	return d.header, nil
}
