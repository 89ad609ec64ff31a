package blend

// div255 divides x by 255 with rounding to nearest, without a division.
//
// Formula: t = x + 128; (t + (t >> 8)) >> 8
//
// This is exact for every product of two bytes (0..65025).
//
// References:
//   - Jim Blinn, "Three Wrongs Make a Right" (1995)
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255, rounding to nearest.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// premultiply scales colour by alpha.
func premultiply(r, g, b, a byte) (byte, byte, byte, byte) {
	if a == 255 {
		return r, g, b, a
	}
	return mulDiv255(r, a), mulDiv255(g, a), mulDiv255(b, a), a
}

// unpremultiply divides colour by alpha, rounding to nearest.
// Fully transparent pixels become transparent black.
func unpremultiply(r, g, b, a byte) (byte, byte, byte, byte) {
	switch a {
	case 0:
		return 0, 0, 0, 0
	case 255:
		return r, g, b, a
	}
	return unpremulChannel(r, a), unpremulChannel(g, a), unpremulChannel(b, a), a
}

func unpremulChannel(c, a byte) byte {
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}
