package util

import "math"

// Round2 rounds v to two decimal places, the precision used for fiat prices.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds v to four decimal places, used for ratios and correlation values.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
