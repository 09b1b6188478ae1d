package validation

import (
	"fmt"

	"github.com/iwvelando/property-proforma/internal/config"
	"github.com/iwvelando/property-proforma/internal/proforma"
)

// fractionField pairs an assumption field name with its value for the
// [0, 1] invariant check.
type fractionField struct {
	name  string
	value float64
}

// ValidateAssumptions returns warnings for assumption values that violate
// the fractional-decimal invariant or are otherwise implausible. Warnings do
// not block computation.
func ValidateAssumptions(assumptions proforma.AssumptionSet) []string {
	var warnings []string

	fractions := []fractionField{
		{"downPaymentPercent", assumptions.DownPaymentPercent},
		{"interestRate", assumptions.InterestRate},
		{"closingCostsPercent", assumptions.ClosingCostsPercent},
		{"landValuePercent", assumptions.LandValuePercent},
		{"occupancyRate", assumptions.OccupancyRate},
		{"propertyTaxPercent", assumptions.PropertyTaxPercent},
		{"homeInsurancePercent", assumptions.HomeInsurancePercent},
		{"maintenancePercent", assumptions.MaintenancePercent},
		{"vacancyPercent", assumptions.VacancyPercent},
		{"managementFeePercent", assumptions.ManagementFeePercent},
		{"platformFeePercent", assumptions.PlatformFeePercent},
	}
	for _, f := range fractions {
		if f.value < 0 || f.value > 1 {
			warnings = append(warnings, fmt.Sprintf(
				"Field '%s' is %v but rates are decimal fractions in [0, 1]; a value like 6.5 likely means 0.065",
				f.name, f.value))
		}
	}

	if assumptions.PurchasePrice <= 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Purchase price is %v - computed ratios will be non-finite", assumptions.PurchasePrice))
	}
	if assumptions.LoanTermYears <= 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Loan term is %v years - the mortgage payment will be zero", assumptions.LoanTermYears))
	}

	return warnings
}

// ValidateProfile returns warnings for personal profile rates outside the
// fractional-decimal invariant.
func ValidateProfile(personal proforma.PersonalProfile) []string {
	var warnings []string

	fractions := []fractionField{
		{"federalTaxRate", personal.FederalTaxRate},
		{"stateTaxRate", personal.StateTaxRate},
		{"opportunityCostRate", personal.OpportunityCostRate},
	}
	for _, f := range fractions {
		if f.value < 0 || f.value > 1 {
			warnings = append(warnings, fmt.Sprintf(
				"Field '%s' is %v but rates are decimal fractions in [0, 1]", f.name, f.value))
		}
	}

	return warnings
}

// ValidateProperty returns warnings for implausible property attributes.
func ValidateProperty(property config.Property) []string {
	var warnings []string

	if property.Address == "" {
		warnings = append(warnings, "Property address is empty; simulated values will derive from room counts and year only")
	}
	if property.Bedrooms < 0 {
		warnings = append(warnings, fmt.Sprintf("Bedroom count %d is negative", property.Bedrooms))
	}
	if property.Bathrooms < 0 {
		warnings = append(warnings, fmt.Sprintf("Bathroom count %v is negative", property.Bathrooms))
	}
	if property.YearBuilt < 1800 {
		warnings = append(warnings, fmt.Sprintf("Year built %d looks implausible", property.YearBuilt))
	}

	return warnings
}

// ValidateScenarios returns an error when any requested scenario tag is
// unknown.
func ValidateScenarios(scenarios []proforma.Scenario) error {
	for _, s := range scenarios {
		if !s.Valid() {
			return fmt.Errorf("unknown scenario %q; expected one of %s, %s, %s",
				s, proforma.ScenarioRental, proforma.ScenarioAirbnb, proforma.ScenarioOwner)
		}
	}
	return nil
}
