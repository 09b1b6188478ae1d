// Package proforma defines the data structures for a year-1 investment
// proforma and includes the engine that computes one from a set of
// assumptions, a personal tax profile, and a strategy scenario.
package proforma

// Scenario selects the investment strategy a proforma is computed for. It is
// a discriminant, not a persisted mode; the engine is stateless.
type Scenario string

// Supported scenarios.
const (
	ScenarioRental Scenario = "rental"
	ScenarioAirbnb Scenario = "airbnb"
	ScenarioOwner  Scenario = "owner"
)

// Valid reports whether s is one of the supported scenario tags.
func (s Scenario) Valid() bool {
	switch s {
	case ScenarioRental, ScenarioAirbnb, ScenarioOwner:
		return true
	}
	return false
}

// AssumptionSet holds every financial assumption a proforma is computed from.
// All rate and percent fields are decimal fractions in [0, 1]; conversion to
// display percentages is strictly a presentation concern. The set is replaced
// wholesale on edit, never mutated in place.
type AssumptionSet struct {
	// Purchase and loan
	PurchasePrice       float64 `json:"purchasePrice"`
	DownPaymentPercent  float64 `json:"downPaymentPercent"`
	InterestRate        float64 `json:"interestRate"`
	LoanTermYears       float64 `json:"loanTermYears"`
	ClosingCostsPercent float64 `json:"closingCostsPercent"`
	LandValuePercent    float64 `json:"landValuePercent"`

	// Income
	MonthlyRent    float64 `json:"monthlyRent"`
	AvgNightlyRate float64 `json:"avgNightlyRate"`
	OccupancyRate  float64 `json:"occupancyRate"`
	EquivalentRent float64 `json:"equivalentRent"`

	// Operating expenses
	PropertyTaxPercent   float64 `json:"propertyTaxPercent"`
	HomeInsurancePercent float64 `json:"homeInsurancePercent"`
	MonthlyHOA           float64 `json:"monthlyHOA"`
	UtilitiesMonthly     float64 `json:"utilitiesMonthly"`
	MaintenancePercent   float64 `json:"maintenancePercent"`
	VacancyPercent       float64 `json:"vacancyPercent"`
	ManagementFeePercent float64 `json:"managementFeePercent"`
	PlatformFeePercent   float64 `json:"platformFeePercent"`
}

// PersonalProfile holds the tax and opportunity-cost rates of the person the
// proforma is computed for, as decimal fractions.
type PersonalProfile struct {
	FederalTaxRate      float64 `json:"federalTaxRate"`
	StateTaxRate        float64 `json:"stateTaxRate"`
	OpportunityCostRate float64 `json:"opportunityCostRate"`
}

// Base holds the figures shared by every scenario.
type Base struct {
	DownPaymentAmount     float64 `json:"downPaymentAmount"`
	LoanAmount            float64 `json:"loanAmount"`
	TotalCashNeeded       float64 `json:"totalCashNeeded"`
	AnnualMortgagePayment float64 `json:"annualMortgagePayment"`
	YearOneInterest       float64 `json:"yearOneInterest"`
	YearOnePrincipal      float64 `json:"yearOnePrincipal"`
	AnnualPropertyTax     float64 `json:"annualPropertyTax"`
	AnnualHomeInsurance   float64 `json:"annualHomeInsurance"`
	AnnualHOA             float64 `json:"annualHOA"`
	AnnualUtilities       float64 `json:"annualUtilities"`
	AnnualDepreciation    float64 `json:"annualDepreciation"`
	CombinedTaxRate       float64 `json:"combinedTaxRate"`
	OpportunityCost       float64 `json:"opportunityCost"`
}

// RentalResult holds the figures specific to the rental and airbnb scenarios.
type RentalResult struct {
	GrossPotentialIncome   float64 `json:"grossPotentialIncome"`
	VacancyLoss            float64 `json:"vacancyLoss"`
	EffectiveGrossIncome   float64 `json:"effectiveGrossIncome"`
	Maintenance            float64 `json:"maintenance"`
	ManagementFee          float64 `json:"managementFee"`
	PlatformFee            float64 `json:"platformFee"`
	TotalOperatingExpenses float64 `json:"totalOperatingExpenses"`
	TotalExpenses          float64 `json:"totalExpenses"`
	NetOperatingIncome     float64 `json:"netOperatingIncome"`
	CashFlowBeforeTax      float64 `json:"cashFlowBeforeTax"`
	DeductibleExpenses     float64 `json:"deductibleExpenses"`
	NetTaxableIncome       float64 `json:"netTaxableIncome"`
	TaxBenefit             float64 `json:"taxBenefit"`
	CashFlowAfterTax       float64 `json:"cashFlowAfterTax"`
	CapRate                float64 `json:"capRate"`
	CashOnCashReturn       float64 `json:"cashOnCashReturn"`
	CashFlowPerMonth       float64 `json:"cashFlowPerMonth"`
}

// OwnerResult holds the figures specific to the owner-occupied scenario.
type OwnerResult struct {
	GrossAvoidedRent      float64 `json:"grossAvoidedRent"`
	AnnualPITI            float64 `json:"annualPITI"`
	TotalAnnualCost       float64 `json:"totalAnnualCost"`
	TotalExpenses         float64 `json:"totalExpenses"`
	DeductiblePropertyTax float64 `json:"deductiblePropertyTax"`
	TotalDeductions       float64 `json:"totalDeductions"`
	TaxBenefit            float64 `json:"taxBenefit"`
	NetAnnualCost         float64 `json:"netAnnualCost"`
	NetBenefit            float64 `json:"netBenefit"`
	MonthlyTotalCost      float64 `json:"monthlyTotalCost"`
	NetMonthlyCost        float64 `json:"netMonthlyCost"`
}

// Proforma is the computed, immutable year-1 statement for one scenario: the
// shared Base extended by exactly one variant, selected by Scenario. It is a
// pure function of its inputs, which is what licenses external caching.
type Proforma struct {
	Scenario Scenario `json:"scenario"`
	Base     Base     `json:"base"`

	Rental *RentalResult `json:"rental,omitempty"`
	Owner  *OwnerResult  `json:"owner,omitempty"`
}
