package main

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a result for display. Integers have no decimal point.
// Other values are fixed to six decimal places with trailing zeros removed.
func FormatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	case v == 0:
		// Includes negative zero.
		return "0"
	case v == math.Trunc(v):
		if math.Abs(v) >= 1e21 {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
