// Package simulate synthesizes a full assumption set from basic property
// attributes. It stands in for a live property-data provider: every value is
// drawn from the seeded generator so that the same property always produces
// the same assumptions, while different properties produce plausibly varied
// market data. A real data source must produce the same AssumptionSet shape
// and can replace this package without touching the proforma engine.
package simulate

import (
	"time"

	"github.com/iwvelando/property-proforma/internal/config"
	"github.com/iwvelando/property-proforma/internal/proforma"
	"github.com/iwvelando/property-proforma/pkg/constants"
	"github.com/iwvelando/property-proforma/pkg/mathutil"
	"github.com/iwvelando/property-proforma/pkg/seeded"
)

// Base dollar rates for deriving a purchase price from the room counts.
const (
	perBedroomRate  = 85000.0
	perBathroomRate = 45000.0
)

// Per-field seed offsets. Each simulated field draws at its own offset from
// the property's base seed; the offsets must stay distinct or unrelated
// fields become spuriously correlated, and the draw order below must not be
// reordered or every derived value changes.
const (
	offsetAgeFactor = (iota + 1) * 101
	offsetMarketMultiplier
	offsetRentRatio
	offsetSizeAdjustment
	offsetNightlyMultiplier
	offsetBedroomBonus
	offsetOccupancy
	offsetPropertyTax
	offsetInsurance
	offsetInsuranceTier
	offsetHOAPresence
	offsetHOAAmount
	offsetUtilitiesBase
	offsetUtilitiesBedroom
	offsetUtilitiesBathroom
	offsetInterestRate
	offsetDownPayment
	offsetClosingCosts
	offsetLandValue
	offsetVacancy
	offsetMaintenance
	offsetManagementFee
	offsetPlatformFee
	offsetEquivalentRent
)

// Simulator derives market assumptions from property attributes. The
// reference year anchors the age buckets; injecting a fixed year keeps the
// output reproducible in tests.
type Simulator struct {
	referenceYear int
}

// NewSimulator creates a Simulator anchored to the current year.
func NewSimulator() *Simulator {
	return NewSimulatorWithYear(time.Now().Year())
}

// NewSimulatorWithYear creates a Simulator anchored to a fixed reference year.
func NewSimulatorWithYear(year int) *Simulator {
	return &Simulator{referenceYear: year}
}

// Simulate derives a complete assumption set from the property. Pure: the
// same property and reference year always yield a bit-identical result.
func (s *Simulator) Simulate(property config.Property) proforma.AssumptionSet {
	base := seeded.SeedFrom(property.Address, property.Bedrooms, property.Bathrooms, property.YearBuilt)
	age := s.referenceYear - property.YearBuilt

	var assumptions proforma.AssumptionSet

	// Purchase price from room counts, discounted by age and scaled by a
	// market multiplier.
	ageFactor := drawAgeFactor(base, age)
	marketMultiplier := seeded.Value(base+offsetMarketMultiplier, 0.85, 1.35)
	rawPrice := (perBedroomRate*float64(property.Bedrooms) + perBathroomRate*property.Bathrooms) *
		ageFactor * marketMultiplier
	assumptions.PurchasePrice = mathutil.RoundToNearest(rawPrice, constants.PriceRoundingUnit)

	// Long-term rent as a fraction of price, adjusted for size: large homes
	// rent at a discount per dollar, small ones at a premium.
	rentRatio := seeded.Value(base+offsetRentRatio, 0.0045, 0.0075)
	sizeAdjustment := 1.0
	if property.Bedrooms >= 4 {
		sizeAdjustment = seeded.Value(base+offsetSizeAdjustment, 0.90, 0.95)
	} else if property.Bedrooms <= 2 {
		sizeAdjustment = seeded.Value(base+offsetSizeAdjustment, 1.05, 1.15)
	}
	assumptions.MonthlyRent = mathutil.RoundToNearest(
		assumptions.PurchasePrice*rentRatio*sizeAdjustment, constants.RentRoundingUnit)

	// Nightly rate as a multiple of the daily long-term rent.
	nightlyMultiplier := seeded.Value(base+offsetNightlyMultiplier, 2.3, 3.2)
	bedroomBonus := 1.0
	if property.Bedrooms >= 3 {
		bedroomBonus = seeded.Value(base+offsetBedroomBonus, 1.05, 1.15)
	}
	assumptions.AvgNightlyRate = mathutil.RoundToNearest(
		assumptions.MonthlyRent/30*nightlyMultiplier*bedroomBonus, constants.NightlyRateRoundingUnit)

	assumptions.OccupancyRate = seeded.Value(base+offsetOccupancy, 0.55, 0.75)

	assumptions.PropertyTaxPercent = seeded.Value(base+offsetPropertyTax, 0.008, 0.015)
	assumptions.HomeInsurancePercent = seeded.Value(base+offsetInsurance, 0.002, 0.006) *
		drawInsuranceTier(base, assumptions.PurchasePrice)

	assumptions.MonthlyHOA = drawHOA(base, age)

	utilities := seeded.Value(base+offsetUtilitiesBase, 100, 150) +
		float64(property.Bedrooms)*seeded.Value(base+offsetUtilitiesBedroom, 25, 40) +
		property.Bathrooms*seeded.Value(base+offsetUtilitiesBathroom, 15, 25)
	assumptions.UtilitiesMonthly = mathutil.RoundToNearest(utilities, constants.UtilitiesRoundingUnit)

	assumptions.InterestRate = mathutil.RoundToNearest(
		seeded.Value(base+offsetInterestRate, 0.0625, 0.0750), constants.InterestRateRoundingUnit)
	assumptions.LoanTermYears = 30
	assumptions.DownPaymentPercent = mathutil.RoundToNearest(
		seeded.Value(base+offsetDownPayment, 0.15, 0.25), constants.DownPaymentRoundingUnit)
	assumptions.ClosingCostsPercent = seeded.Value(base+offsetClosingCosts, 0.025, 0.040)
	assumptions.LandValuePercent = seeded.Value(base+offsetLandValue, 0.20, 0.35)

	assumptions.VacancyPercent = seeded.Value(base+offsetVacancy, 0.04, 0.08)
	assumptions.MaintenancePercent = seeded.Value(base+offsetMaintenance, 0.06, 0.12)
	assumptions.ManagementFeePercent = seeded.Value(base+offsetManagementFee, 0.08, 0.12)
	assumptions.PlatformFeePercent = seeded.Value(base+offsetPlatformFee, 0.03, 0.05)

	// Owner-equivalent rent runs slightly above the long-term market rent.
	assumptions.EquivalentRent = mathutil.RoundToNearest(
		assumptions.MonthlyRent*seeded.Value(base+offsetEquivalentRent, 1.05, 1.15), constants.RentRoundingUnit)

	return assumptions
}

// drawAgeFactor discounts the price by property age: nearly-new homes carry
// a premium, older stock a widening discount.
func drawAgeFactor(base, age int) float64 {
	seed := base + offsetAgeFactor
	switch {
	case age < 5:
		return seeded.Value(seed, 1.15, 1.25)
	case age < 15:
		return seeded.Value(seed, 1.05, 1.15)
	case age < 30:
		return seeded.Value(seed, 0.95, 1.05)
	case age < 50:
		return seeded.Value(seed, 0.80, 0.95)
	default:
		return seeded.Value(seed, 0.70, 0.90)
	}
}

// drawInsuranceTier adjusts the insurance fraction by price tier: expensive
// homes insure at a slight discount per dollar, cheap ones at a premium.
func drawInsuranceTier(base int, price float64) float64 {
	seed := base + offsetInsuranceTier
	switch {
	case price > 600000:
		return seeded.Value(seed, 0.85, 0.95)
	case price < 250000:
		return seeded.Value(seed, 1.05, 1.20)
	default:
		return 1.0
	}
}

// drawHOA returns monthly HOA dues; 60% of properties carry an HOA, with
// newer developments charging more.
func drawHOA(base, age int) float64 {
	if seeded.Value(base+offsetHOAPresence, 0, 1) >= 0.60 {
		return 0
	}

	seed := base + offsetHOAAmount
	var amount float64
	switch {
	case age < 10:
		amount = seeded.Value(seed, 150, 400)
	case age < 20:
		amount = seeded.Value(seed, 100, 300)
	default:
		amount = seeded.Value(seed, 50, 200)
	}
	return mathutil.RoundToNearest(amount, constants.HOARoundingUnit)
}
