/*
Package channel implements the per-sample conversions between the narrow
channel widths used by N64 texture formats and 8-bit channels.
*/
package channel

// Expand widens the low bits of v to 8 bits by shifting it into the top of
// the byte and replicating its most significant bits into the low bits, so
// the full-scale value maps to 0xff.
func Expand(v uint8, bits uint) uint8 {
	if bits == 0 || bits > 8 {
		return 0
	}
	v &= uint8(1<<bits - 1)

	n := int(bits)
	out := v << (8 - bits)
	for s := 8 - 2*n; ; s -= n {
		if s < 0 {
			out |= v >> uint(-s)
			break
		}
		out |= v << uint(s)
	}
	return out
}

// Reduce truncates an 8-bit sample to its top bits, no rounding.
func Reduce(v uint8, bits uint) uint8 {
	if bits == 0 || bits > 8 {
		return 0
	}
	return v >> (8 - bits)
}

// Intensity derives a single brightness value from r, g and b, weighting
// green twice. t>>8 corrects the bias of the divide by four so that white
// stays at 0xff.
func Intensity(r, g, b uint8) uint8 {
	t := uint32(r) + uint32(g)<<1 + uint32(b)
	return uint8((t + t>>8) >> 2)
}
