// internal/utils/math.go
package utils

// Clamp limits v to the [lo, hi] range.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp performs standard linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
