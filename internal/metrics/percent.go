// Package metrics computes derived values and the normalized metrics model
// shared by every report consumer.
package metrics

import "math"

// percentScale converts a ratio to a percentage.
const percentScale = 100

// decimalScale shifts a percentage by one decimal place for rounding.
const decimalScale = 10

// Percent returns 100*part/whole rounded to one decimal place.
// A zero denominator yields 0.0 rather than a division fault, so
// every call site shares the same zero guard and rounding mode.
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0.0
	}

	return math.Round(part/whole*percentScale*decimalScale) / decimalScale
}
