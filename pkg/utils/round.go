package utils

import "math"

// RoundToTwoDecimals rounds at the presentation boundary. Report internals
// accumulate unrounded and call this once per emitted field.
func RoundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
