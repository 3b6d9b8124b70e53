package utils

import "math"

// Round2 rounds a monetary or percentage figure to 2 decimal places.
// Intermediate computations stay unrounded; only output values pass through
// here.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PercentChange is the growth of current over previous as a percentage.
// A zero previous value yields 0 rather than an undefined ratio.
func PercentChange(previous, current float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
