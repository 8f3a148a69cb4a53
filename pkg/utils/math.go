package utils

import "math"

// RoundDecimal rounds half away from zero to the given number of decimals,
// e.g. RoundDecimal(0.6667, 3) == 0.667.
func RoundDecimal(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}
