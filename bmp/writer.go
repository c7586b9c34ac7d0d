package bmp

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
)

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) encode(b *Bitmap) error {
	h := NewHeader(b.Width, b.Height)
	if err := binary.Write(e.w, binary.LittleEndian, &h); err != nil {
		return err
	}

	// Rows are written bottom-up
	row := make([]byte, b.Width*bytesPerPixel)
	for y := b.Height - 1; y >= 0; y-- {
		for x, p := range b.Pix[y*b.Width : (y+1)*b.Width] {
			binary.LittleEndian.PutUint32(row[x*bytesPerPixel:], uint32(p))
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}

	return e.w.Flush()
}

// Encode writes the Bitmap b to w.
func Encode(w io.Writer, b *Bitmap) error {
	if b.Width < 1 || b.Height < 1 || b.Width > MaxPixels || b.Height > MaxPixels || int64(b.Width)*int64(b.Height) > MaxPixels || len(b.Pix) != b.Width*b.Height {
		return errors.New("bmp: bitmap is wrong size")
	}

	e := encoder{w: bufio.NewWriter(w)}

	return e.encode(b)
}
