// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/property-proforma/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundToNearest rounds a value to the nearest multiple of unit using
// round-half-up semantics, e.g. RoundToNearest(12500, 5000) == 15000.
// A non-positive unit returns the value unchanged.
func RoundToNearest(val, unit float64) float64 {
	if unit <= 0 {
		return val
	}
	return math.Floor(val/unit+0.5) * unit
}

// Fract returns the fractional part of a value, always in [0, 1).
func Fract(val float64) float64 {
	return val - math.Floor(val)
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
