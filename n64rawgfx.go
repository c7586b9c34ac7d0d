/*
Package n64rawgfx is a library for extracting raw textures from N64
cartridge images to ordinary image files and writing edited images back.
*/
package n64rawgfx

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/bodgit/n64rawgfx/texture"
)

var errNotEnough = errors.New("not enough data in ROM")

// Converter moves textures between a ROM and image files.
type Converter struct {
	logger *log.Logger
}

// New returns a Converter logging to logger.
func New(logger *log.Logger) *Converter {
	return &Converter{
		logger: logger,
	}
}

// DefaultFilename returns the image filename used for the texture at
// address when none is given.
func DefaultFilename(address int64) (string, error) {
	if address < 0 || address > math.MaxUint32 {
		return "", fmt.Errorf("address %#x out of range", address)
	}
	return fmt.Sprintf("%08X.bmp", address), nil
}

func readAt(f *os.File, size int, address int64) ([]byte, error) {
	b := make([]byte, size)
	n, err := f.ReadAt(b, address)
	if n == size {
		return b, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: wanted %d bytes at %#x, got %d", errNotEnough, size, address, n)
	}
	return nil, err
}

// formatDepth validates the texture format shared by both directions.
func formatDepth(dir texture.Direction, f texture.Format, d texture.Depth, address int64) error {
	if err := texture.Check(dir, f, d); err != nil {
		return err
	}
	if address < 0 {
		return fmt.Errorf("invalid address %d", address)
	}
	return nil
}
