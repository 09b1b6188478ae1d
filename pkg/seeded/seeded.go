// Package seeded provides deterministic pseudo-random value generation keyed
// by an integer seed. It underlies all synthetic market data: consumers need
// reproducible, plausible-looking variability, not statistical rigor, so the
// generator trades uniformity for exact cross-call reproducibility.
package seeded

import (
	"math"

	"github.com/iwvelando/property-proforma/pkg/mathutil"
)

// Value returns a deterministic value in [min, max) for the given seed. The
// same seed always yields the same value. The underlying formula is
// fract(sin(seed) * 10000) mapped linearly into the range; it must not be
// changed because every simulated assumption derives from it.
func Value(seed int, min, max float64) float64 {
	f := mathutil.Fract(math.Sin(float64(seed)) * 10000)
	return min + f*(max-min)
}

// SeedFrom derives an integer seed from basic property attributes. The seed
// sums the address character codes with a weighted combination of bedroom
// count, bathroom count, and year built, so changing any attribute changes
// every downstream draw. Bathroom counts allow half steps; the doubling keeps
// the contribution integral.
func SeedFrom(address string, bedrooms int, bathrooms float64, yearBuilt int) int {
	seed := 0
	for _, r := range address {
		seed += int(r)
	}
	seed += bedrooms*31 + int(math.Round(bathrooms*2))*17 + yearBuilt
	return seed
}
