package bmi

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders a float the way a JavaScript console prints a
// number: NaN and ±Infinity by name, plain decimals for magnitudes in
// [1e-6, 1e21), and a shortest exponent form otherwise.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// 'e' pads the exponent to two digits ("1e-07"); drop the padding.
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
