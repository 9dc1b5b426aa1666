package text

const lowerhex = "0123456789abcdef"

// Reverse reverses b in place and returns it.
func Reverse(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return b
}

// FromInt formats n into buf in the given base and returns the used
// prefix of buf. Bases outside 2..16 fall back to 10. Negative values
// get a leading minus in any base. 33 bytes of buf always suffice.
func FromInt(buf []byte, n int32, base uint8) []byte {
	if base < 2 || base > 16 {
		base = 10
	}

	v := int64(n)
	negative := v < 0
	if negative {
		v = -v
	}

	i := 0
	for {
		buf[i] = lowerhex[v%int64(base)]
		i++
		v /= int64(base)
		if v == 0 {
			break
		}
	}
	if negative {
		buf[i] = '-'
		i++
	}

	return Reverse(buf[:i])
}

// FromFloat formats n into buf with the requested number of decimal
// places, rounding half-up on the last place, and returns the used
// prefix of buf. Magnitudes past the int32 range, NaN, and infinities
// are not handled; line traffic here never carries them.
func FromFloat(buf []byte, n float64, places uint8) []byte {
	length := 0

	if n < 0.0 {
		buf[length] = '-'
		length++
		n = -n
	}

	rounding := 0.5
	for range places {
		rounding /= 10.0
	}
	n += rounding

	intPart := uint32(n)
	remainder := n - float64(intPart)
	length += len(FromInt(buf[length:], int32(intPart), 10))

	if places > 0 {
		buf[length] = '.'
		length++
	}

	for ; places > 0; places-- {
		remainder *= 10.0
		digit := uint32(remainder)
		buf[length] = lowerhex[digit&15]
		length++
		remainder -= float64(digit)
	}

	return buf[:length]
}
