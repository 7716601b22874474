package utils

import (
	"math"
	"strconv"
)

// streamPrecision is the number of significant digits a default-configured C++ ostream prints.
const streamPrecision = 6

// FormatFloat renders v like `std::cout << v` does with default flags:
// 6 significant digits, no trailing zeros, exponent notation outside [1e-4, 1e6).
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'g', streamPrecision, 64)
}
