// Package round provides the fixed-decimal rounding applied when results
// are formatted for display. Computation keeps full precision.
package round

import "math"

// Places rounds x to n decimal places, halves away from zero.
func Places(x float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(x*p) / p
}
