package grading

import (
	"math"
	"strconv"
)

// FormatIndex renders SPI/CPI with two decimals. Zero and non-finite values
// render as "0.00", never blank.
func FormatIndex(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatCredits uses the shortest decimal form: 8, 3.5.
func FormatCredits(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
