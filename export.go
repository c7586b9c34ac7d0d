package n64rawgfx

import (
	"fmt"
	"os"

	"github.com/bodgit/n64rawgfx/bmp"
	"github.com/bodgit/n64rawgfx/texture"
)

// ExportOptions describes a texture to extract.
type ExportOptions struct {
	// ROM is the cartridge image to read from.
	ROM string
	// Image is the file to write, DefaultFilename(Address) if empty. The
	// extension selects the container, see WriteImage.
	Image string

	Format  texture.Format
	Depth   texture.Depth
	Address int64
	Width   int
	Height  int

	// Palette location, CI only.
	PaletteDepth   texture.Depth
	PaletteAddress int64
}

// Validate checks the options before any file is touched.
func (o ExportOptions) Validate() error {
	if o.ROM == "" {
		return fmt.Errorf("no ROM file")
	}
	if err := formatDepth(texture.Export, o.Format, o.Depth, o.Address); err != nil {
		return err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", texture.ErrDimension, o.Width, o.Height)
	}
	if o.Width > bmp.MaxPixels || o.Height > bmp.MaxPixels || (int64(o.Width)+1)*int64(o.Height) > bmp.MaxPixels {
		return fmt.Errorf("%w: %dx%d is too large", texture.ErrDimension, o.Width, o.Height)
	}
	if o.Format == texture.CI {
		if !texture.Supported(texture.Export, texture.RGBA, o.PaletteDepth) {
			return fmt.Errorf("%w: palette depth %s", texture.ErrPalette, o.PaletteDepth)
		}
		if o.PaletteAddress < 0 {
			return fmt.Errorf("invalid palette address %d", o.PaletteAddress)
		}
	}
	return nil
}

func (c *Converter) readPalette(f *os.File, o ExportOptions) (texture.Palette, error) {
	colors := texture.PaletteSize(o.Depth)
	raw, err := readAt(f, texture.EncodedSize(o.PaletteDepth, colors), o.PaletteAddress)
	if err != nil {
		return nil, fmt.Errorf("reading palette: %w", err)
	}

	c.logger.Printf("Read %d color palette at %#x (%s)\n", colors, o.PaletteAddress, o.PaletteDepth)

	return texture.ResolvePalette(raw, o.PaletteDepth, o.Depth)
}

// Export reads the texture described by o from the ROM and writes it to an
// image file, returning the name of the file written.
func (c *Converter) Export(o ExportOptions) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}

	name := o.Image
	if name == "" {
		var err error
		if name, err = DefaultFilename(o.Address); err != nil {
			return "", err
		}
	}

	f, err := os.Open(o.ROM)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var pal texture.Palette
	if o.Format == texture.CI {
		if pal, err = c.readPalette(f, o); err != nil {
			return "", err
		}
	}

	// Two pixels share a byte so a row can't end half way through one
	width := o.Width
	if o.Depth == texture.Depth4 && width&1 != 0 {
		width++
		c.logger.Printf("Rounding width %d up to %d\n", o.Width, width)
	}

	pix := make([]texture.Pixel, width*o.Height)
	raw, err := readAt(f, texture.EncodedSize(o.Depth, len(pix)), o.Address)
	if err != nil {
		return "", fmt.Errorf("reading texture: %w", err)
	}

	if err := texture.Decode(pix, raw, o.Format, o.Depth, pal); err != nil {
		return "", err
	}

	c.logger.Printf("Exporting %dx%d %s %s texture at %#x to \"%s\"\n", width, o.Height, o.Format, o.Depth, o.Address, name)

	if err := WriteImage(name, &bmp.Bitmap{Width: width, Height: o.Height, Pix: pix}); err != nil {
		return "", err
	}

	return name, nil
}
