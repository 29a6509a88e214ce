package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Display sentinels for non-finite values.
const (
	textInf    = "Infinity"
	textNegInf = "-Infinity"
	textNaN    = "NaN"
)

// FormatNumber renders v the way the display shows it: the shortest decimal
// that round-trips, switching to exponent form outside [1e-6, 1e21).
// Negative zero renders as "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return textNaN
	case math.IsInf(v, 1):
		return textInf
	case math.IsInf(v, -1):
		return textNegInf
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(v, 'e', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimExponent drops leading zeros from the exponent ("1e-07" -> "1e-7").
func trimExponent(s string) string {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 || idx+2 >= len(s) {
		return s
	}
	mantissa, sign, digits := s[:idx], s[idx+1:idx+2], strings.TrimLeft(s[idx+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// ParseNumber reads a display string. Text that is not a number yields NaN;
// out-of-range input saturates to ±Inf.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}
