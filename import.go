package n64rawgfx

import (
	"fmt"
	"os"

	"github.com/bodgit/n64rawgfx/romcrc"
	"github.com/bodgit/n64rawgfx/texture"
)

// ImportOptions describes a texture to write back.
type ImportOptions struct {
	// ROM is the cartridge image to patch.
	ROM string
	// Image is the file to read, DefaultFilename(Address) if empty.
	Image string

	Format  texture.Format
	Depth   texture.Depth
	Address int64

	// FixChecksum updates the boot checksum in the ROM header afterwards.
	FixChecksum bool
	// CIC selects the checksum variant, detected from the boot code if
	// zero.
	CIC romcrc.CIC
}

// Validate checks the options before any file is touched.
func (o ImportOptions) Validate() error {
	if o.ROM == "" {
		return fmt.Errorf("no ROM file")
	}
	if o.CIC != 0 && !o.CIC.Valid() {
		return fmt.Errorf("unknown CIC %d", int(o.CIC))
	}
	return formatDepth(texture.Import, o.Format, o.Depth, o.Address)
}

func (c *Converter) checksumCIC(f *os.File, cic romcrc.CIC) (romcrc.CIC, error) {
	rom, err := readAt(f, romcrc.MinSize, 0)
	if err != nil {
		return 0, err
	}

	if cic != 0 {
		// Still catches a small or byte-swapped image
		if _, _, err := romcrc.Stored(rom); err != nil {
			return 0, err
		}
		return cic, nil
	}

	if cic, err = romcrc.Detect(rom); err != nil {
		return 0, err
	}

	c.logger.Printf("Detected %s\n", cic)

	return cic, nil
}

func (c *Converter) fixChecksum(f *os.File, cic romcrc.CIC) error {
	rom, err := readAt(f, romcrc.MinSize, 0)
	if err != nil {
		return err
	}

	changed, err := romcrc.Update(rom, cic)
	if err != nil {
		return err
	}
	if !changed {
		c.logger.Println("Checksum unchanged")
		return nil
	}

	if _, err := f.WriteAt(rom[:romcrc.HeaderSize], 0); err != nil {
		return err
	}

	c.logger.Println("Updated checksum")

	return nil
}

// Import reads an image file and writes it into the ROM as the texture
// described by o, returning the name of the file read.
func (c *Converter) Import(o ImportOptions) (string, error) {
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

	b, err := ReadImage(name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}

	if o.Depth == texture.Depth4 && b.Width&1 != 0 {
		return "", fmt.Errorf("%w: width must be divisible by 2 for %s", texture.ErrDimension, o.Depth)
	}

	raw := make([]byte, texture.EncodedSize(o.Depth, len(b.Pix)))
	if err := texture.Encode(raw, b.Pix, o.Format, o.Depth); err != nil {
		return "", err
	}

	f, err := os.OpenFile(o.ROM, os.O_RDWR, 0)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// Work out the CIC before anything is written
	cic := o.CIC
	if o.FixChecksum {
		if cic, err = c.checksumCIC(f, cic); err != nil {
			return "", err
		}
	}

	c.logger.Printf("Importing %dx%d %s %s texture from \"%s\" at %#x\n", b.Width, b.Height, o.Format, o.Depth, name, o.Address)

	if _, err := f.WriteAt(raw, o.Address); err != nil {
		return "", err
	}

	if o.FixChecksum {
		if err := c.fixChecksum(f, cic); err != nil {
			return "", err
		}
	}

	if err := f.Close(); err != nil {
		return "", err
	}

	return name, nil
}
