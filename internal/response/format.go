package response

import (
	"math"
	"strconv"
)

// FormatComplex renders z as "(re+imj)", or "imj" when the real part is
// zero. Negative zero counts as zero, so neither "(-0-1j)" nor "(1-0j)" is
// ever produced.
func FormatComplex(z complex128) string {
	re, im := real(z), imag(z)
	if re == 0 {
		return formatPart(im) + "j"
	}
	sign := "+"
	if math.Signbit(im) && im != 0 && !math.IsNaN(im) {
		sign = "-"
		im = -im
	}
	return "(" + formatPart(re) + sign + formatPart(im) + "j)"
}

// formatPart writes the shortest decimal that round-trips, switching to
// exponent form below 1e-4 and from 1e16 up.
func formatPart(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	if x == 0 {
		x = 0
	}
	if abs := math.Abs(x); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
