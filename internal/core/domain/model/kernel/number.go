package kernel

import "math"

// isWholeNumber reports whether v is a finite number without a fractional part.
// Magnitude is not checked here; callers range-check in float64 before converting.
func isWholeNumber(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v == math.Trunc(v)
}
