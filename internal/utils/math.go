package utils

import "math"

// RoundTo rounds value to the given number of decimal places, half away from zero
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// Clamp bounds value to [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, value))
}

// Percent returns part/total as a percentage rounded to two places.
// A zero total yields 0.
func Percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return RoundTo(float64(part)*100/float64(total), 2)
}
