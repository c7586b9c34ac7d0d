package texture

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is matched by every *UnsupportedError.
	ErrUnsupported = errors.New("texture: unsupported format")
	// ErrDimension is returned for an empty pixel run, or an odd one at
	// 4-bit depth.
	ErrDimension = errors.New("texture: invalid pixel count")
	// ErrBufferSize is returned when a buffer does not match the pixel
	// count.
	ErrBufferSize = errors.New("texture: buffer size mismatch")
	// ErrPalette is returned when a palette does not match the index range.
	ErrPalette = errors.New("texture: invalid palette")
)

// UnsupportedError records a format and depth combination that cannot be
// converted in the given direction.
type UnsupportedError struct {
	Direction Direction
	Format    Format
	Depth     Depth
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("texture: %s of %s at %s is not supported", e.Direction, e.Format, e.Depth)
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

type (
	decodeFunc func(dst []Pixel, src []byte, pal Palette)
	encodeFunc func(dst []byte, src []Pixel)
)

// Every format and depth has an entry, nil where there is no conversion.
var decoders = [...][numDepths]decodeFunc{
	RGBA: {Depth16: decodeRGBA16, Depth32: decodeRGBA32},
	YUV:  {},
	CI:   {Depth4: decodeCI4, Depth8: decodeCI8},
	IA:   {Depth16: decodeIA16},
	I:    {Depth4: decodeI4, Depth8: decodeI8},
}

var encoders = [...][numDepths]encodeFunc{
	RGBA: {Depth16: encodeRGBA16, Depth32: encodeRGBA32},
	YUV:  {},
	CI:   {},
	IA:   {Depth16: encodeIA16},
	I:    {Depth4: encodeI4, Depth8: encodeI8},
}

var _ [int(numFormats) - len(decoders)]struct{}
var _ [len(decoders) - int(numFormats)]struct{}
var _ [int(numFormats) - len(encoders)]struct{}
var _ [len(encoders) - int(numFormats)]struct{}

func valid(f Format, d Depth) bool {
	return f >= 0 && f < numFormats && d >= 0 && d < numDepths
}

// Supported reports whether textures of format f at depth d can be
// converted in direction dir.
func Supported(dir Direction, f Format, d Depth) bool {
	if !valid(f, d) {
		return false
	}
	switch dir {
	case Export:
		return decoders[f][d] != nil
	case Import:
		return encoders[f][d] != nil
	}
	return false
}

// Check returns an *UnsupportedError if Supported(dir, f, d) is false.
func Check(dir Direction, f Format, d Depth) error {
	if !Supported(dir, f, d) {
		return &UnsupportedError{Direction: dir, Format: f, Depth: d}
	}
	return nil
}

// CheckCount validates the number of pixels in a texture at depth d.
func CheckCount(d Depth, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: %d", ErrDimension, count)
	}
	if d == Depth4 && count&1 != 0 {
		return fmt.Errorf("%w: %d is odd at %s", ErrDimension, count, d)
	}
	return nil
}
