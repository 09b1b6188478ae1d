package proforma

import (
	"github.com/iwvelando/property-proforma/pkg/constants"
	"github.com/iwvelando/property-proforma/pkg/mathutil"
	"github.com/iwvelando/property-proforma/pkg/mortgage"
)

// Compute builds the year-1 proforma for one scenario. It is a total
// function: no validation is performed and no error is returned. Degenerate
// numeric input (for example a zero price) propagates as NaN or Inf in the
// result; substituting display fallbacks for non-finite values belongs to the
// presentation boundary, never here.
func Compute(assumptions AssumptionSet, personal PersonalProfile, scenario Scenario) Proforma {
	base := computeBase(assumptions, personal)

	result := Proforma{
		Scenario: scenario,
		Base:     base,
	}

	switch scenario {
	case ScenarioOwner:
		owner := computeOwner(assumptions, base)
		result.Owner = &owner
	default:
		rental := computeRental(assumptions, base, scenario)
		result.Rental = &rental
	}

	return result
}

func computeBase(assumptions AssumptionSet, personal PersonalProfile) Base {
	var base Base

	base.DownPaymentAmount = assumptions.PurchasePrice * assumptions.DownPaymentPercent
	base.LoanAmount = assumptions.PurchasePrice - base.DownPaymentAmount
	base.TotalCashNeeded = base.DownPaymentAmount + assumptions.PurchasePrice*assumptions.ClosingCostsPercent

	base.AnnualMortgagePayment = mortgage.CalculateAnnualPayment(
		base.LoanAmount, assumptions.InterestRate, assumptions.LoanTermYears)
	base.YearOneInterest = mortgage.CalculateYearOneInterest(base.LoanAmount, assumptions.InterestRate)
	base.YearOnePrincipal = base.AnnualMortgagePayment - base.YearOneInterest

	base.AnnualPropertyTax = assumptions.PurchasePrice * assumptions.PropertyTaxPercent
	base.AnnualHomeInsurance = assumptions.PurchasePrice * assumptions.HomeInsurancePercent
	base.AnnualHOA = assumptions.MonthlyHOA * constants.MonthsPerYear
	base.AnnualUtilities = assumptions.UtilitiesMonthly * constants.MonthsPerYear

	depreciationBasis := assumptions.PurchasePrice * (1 - assumptions.LandValuePercent)
	base.AnnualDepreciation = depreciationBasis / constants.DepreciationYears

	base.CombinedTaxRate = personal.FederalTaxRate + personal.StateTaxRate
	base.OpportunityCost = base.TotalCashNeeded * personal.OpportunityCostRate

	return base
}

func computeRental(assumptions AssumptionSet, base Base, scenario Scenario) RentalResult {
	var r RentalResult

	if scenario == ScenarioAirbnb {
		r.GrossPotentialIncome = assumptions.AvgNightlyRate * constants.NightsPerYear * assumptions.OccupancyRate
		// Occupancy already nets out vacancy; an explicit vacancy loss would
		// double count it.
		r.VacancyLoss = 0
	} else {
		r.GrossPotentialIncome = assumptions.MonthlyRent * constants.MonthsPerYear
		r.VacancyLoss = r.GrossPotentialIncome * assumptions.VacancyPercent
	}
	r.EffectiveGrossIncome = r.GrossPotentialIncome - r.VacancyLoss

	r.Maintenance = r.EffectiveGrossIncome * assumptions.MaintenancePercent
	r.ManagementFee = r.EffectiveGrossIncome * assumptions.ManagementFeePercent
	if scenario == ScenarioAirbnb {
		r.PlatformFee = r.EffectiveGrossIncome * assumptions.PlatformFeePercent
	}

	r.TotalOperatingExpenses = base.AnnualPropertyTax + base.AnnualHomeInsurance +
		base.AnnualHOA + base.AnnualUtilities + r.Maintenance + r.ManagementFee + r.PlatformFee
	r.TotalExpenses = r.TotalOperatingExpenses + base.AnnualMortgagePayment + base.OpportunityCost

	r.NetOperatingIncome = r.EffectiveGrossIncome - r.TotalOperatingExpenses
	r.CashFlowBeforeTax = r.NetOperatingIncome - base.AnnualMortgagePayment

	r.DeductibleExpenses = r.TotalOperatingExpenses + base.YearOneInterest + base.AnnualDepreciation
	r.NetTaxableIncome = r.EffectiveGrossIncome - r.DeductibleExpenses
	// A paper loss offsets other income in full; positive taxable income
	// shows tax owed as a negative benefit.
	r.TaxBenefit = -r.NetTaxableIncome * base.CombinedTaxRate

	r.CashFlowAfterTax = r.CashFlowBeforeTax + r.TaxBenefit

	r.CapRate = r.NetOperatingIncome / assumptions.PurchasePrice
	r.CashOnCashReturn = r.CashFlowAfterTax / base.TotalCashNeeded
	r.CashFlowPerMonth = r.CashFlowAfterTax / constants.MonthsPerYear

	return r
}

func computeOwner(assumptions AssumptionSet, base Base) OwnerResult {
	var o OwnerResult

	o.GrossAvoidedRent = assumptions.EquivalentRent * constants.MonthsPerYear

	o.AnnualPITI = base.AnnualMortgagePayment + base.AnnualPropertyTax + base.AnnualHomeInsurance
	o.TotalAnnualCost = o.AnnualPITI + base.AnnualHOA + base.AnnualUtilities
	o.TotalExpenses = o.TotalAnnualCost + base.OpportunityCost

	o.DeductiblePropertyTax = mathutil.Min(base.AnnualPropertyTax, constants.PropertyTaxDeductionCap)
	o.TotalDeductions = o.DeductiblePropertyTax + base.YearOneInterest
	o.TaxBenefit = o.TotalDeductions * base.CombinedTaxRate

	o.NetAnnualCost = o.TotalAnnualCost - o.TaxBenefit
	o.NetBenefit = o.GrossAvoidedRent - o.NetAnnualCost
	o.MonthlyTotalCost = o.TotalAnnualCost / constants.MonthsPerYear
	o.NetMonthlyCost = o.NetAnnualCost / constants.MonthsPerYear

	return o
}
