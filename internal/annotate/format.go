package annotate

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders x in shortest round-trip form with a trailing ".0" on
// integral values, switching to exponent notation below 1e-4 and from 1e16:
// 1 -> "1.0", 0.1 -> "0.1", 0.00001 -> "1e-05".
func FormatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	if abs := math.Abs(x); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}

	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
