package config

import "github.com/iwvelando/property-proforma/internal/proforma"

// DefaultAssumptions returns the assumption set used before any property has
// been analyzed or simulated. All rate fields are decimal fractions.
func DefaultAssumptions() proforma.AssumptionSet {
	return proforma.AssumptionSet{
		PurchasePrice:       450000,
		DownPaymentPercent:  0.20,
		InterestRate:        0.0675,
		LoanTermYears:       30,
		ClosingCostsPercent: 0.03,
		LandValuePercent:    0.25,

		MonthlyRent:    2600,
		AvgNightlyRate: 225,
		OccupancyRate:  0.65,
		EquivalentRent: 2800,

		PropertyTaxPercent:   0.011,
		HomeInsurancePercent: 0.004,
		MonthlyHOA:           0,
		UtilitiesMonthly:     250,
		MaintenancePercent:   0.08,
		VacancyPercent:       0.05,
		ManagementFeePercent: 0.10,
		PlatformFeePercent:   0.03,
	}
}

// DefaultProfile returns the personal tax profile used before the user has
// entered their own rates.
func DefaultProfile() proforma.PersonalProfile {
	return proforma.PersonalProfile{
		FederalTaxRate:      0.24,
		StateTaxRate:        0.05,
		OpportunityCostRate: 0.07,
	}
}

// ResolveAssumptions returns the configured assumption set or the defaults
// when the config carries none.
func (conf *Configuration) ResolveAssumptions() proforma.AssumptionSet {
	if conf.Assumptions != nil {
		return *conf.Assumptions
	}
	return DefaultAssumptions()
}

// ResolveProfile returns the configured personal profile or the defaults
// when the config carries none.
func (conf *Configuration) ResolveProfile() proforma.PersonalProfile {
	if conf.Profile != nil {
		return *conf.Profile
	}
	return DefaultProfile()
}
