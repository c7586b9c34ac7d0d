package n64rawgfx

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/n64rawgfx/bmp"
	"github.com/bodgit/n64rawgfx/texture"
	_ "golang.org/x/image/bmp" // register decoder for other BMP variants
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// WriteImage writes b to the named file. Files ending in .png or .tif/.tiff
// are written as PNG or TIFF, anything else as a 32-bit BMP.
func WriteImage(name string, b *bmp.Bitmap) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		m, err := texture.NewImage(b.Pix, b.Width, b.Height)
		if err != nil {
			return err
		}
		return png.Encode(f, m)
	case ".tif", ".tiff":
		m, err := texture.NewImage(b.Pix, b.Width, b.Height)
		if err != nil {
			return err
		}
		return tiff.Encode(f, m, &tiff.Options{Compression: tiff.Deflate})
	default:
		return bmp.Encode(f, b)
	}
}

// ReadImage reads the named file. 32-bit uncompressed BMP files are read
// directly, any other format registered with the image package is decoded
// and converted.
func ReadImage(name string) (*bmp.Bitmap, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := bmp.Decode(f)
	if err == nil {
		return b, nil
	}
	if !bmp.IsUnsupported(err) {
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, errors.New("unsupported image format")
		}
		return nil, err
	}
	if cfg.Width > bmp.MaxPixels || cfg.Height > bmp.MaxPixels || int64(cfg.Width)*int64(cfg.Height) > bmp.MaxPixels {
		return nil, fmt.Errorf("image too large: %dx%d", cfg.Width, cfg.Height)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	r := m.Bounds()

	return &bmp.Bitmap{
		Width:  r.Dx(),
		Height: r.Dy(),
		Pix:    texture.FromImage(m),
	}, nil
}
