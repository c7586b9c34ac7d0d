package texture

import (
	"errors"
	"image"
)

var errImageSize = errors.New("texture: pixel count does not match image size")

// NewImage copies width*height canonical pixels, stored top row first, into
// a new image.NRGBA.
func NewImage(pix []Pixel, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return nil, errImageSize
	}

	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, p := range pix {
		o := i << 2
		m.Pix[o+0] = p.R()
		m.Pix[o+1] = p.G()
		m.Pix[o+2] = p.B()
		m.Pix[o+3] = p.A()
	}

	return m, nil
}

// FromImage returns the pixels of m as canonical pixels, top row first.
func FromImage(m image.Image) []Pixel {
	b := m.Bounds()
	pix := make([]Pixel, 0, b.Dx()*b.Dy())

	if n, ok := m.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := n.NRGBAAt(x, y)
				pix = append(pix, ARGB(c.A, c.R, c.G, c.B))
			}
		}
		return pix
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pix = append(pix, PixelModel.Convert(m.At(x, y)).(Pixel))
		}
	}

	return pix
}
