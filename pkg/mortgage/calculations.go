// Package mortgage provides level-payment loan calculations.
package mortgage

import (
	"math"

	"github.com/iwvelando/property-proforma/pkg/constants"
)

// CalculateMonthlyPayment calculates the level monthly payment for a loan
// using the standard amortization formula. Degenerate input (non-positive
// principal, negative rate, or non-positive term) returns 0 rather than an
// error; a zero rate divides the principal evenly across the term.
func CalculateMonthlyPayment(principal, annualInterestRate, termYears float64) float64 {
	if principal <= 0 || annualInterestRate < 0 || termYears <= 0 {
		return 0
	}

	numPayments := termYears * constants.MonthsPerYear
	if annualInterestRate == 0 {
		return principal / numPayments
	}

	periodicInterestRate := annualInterestRate / constants.MonthsPerYear
	power := math.Pow(1.00+periodicInterestRate, numPayments)
	return principal * periodicInterestRate * power / (power - 1.00)
}

// CalculateAnnualPayment returns twelve months of level payments.
func CalculateAnnualPayment(principal, annualInterestRate, termYears float64) float64 {
	return CalculateMonthlyPayment(principal, annualInterestRate, termYears) * constants.MonthsPerYear
}

// CalculateYearOneInterest approximates first-year interest as a flat
// loanAmount × annualRate, not a per-period compounding schedule. Every
// downstream tax figure is defined against this approximation, so it must
// stay exactly as is.
func CalculateYearOneInterest(loanAmount, annualInterestRate float64) float64 {
	return loanAmount * annualInterestRate
}

// CalculateYearOnePrincipal returns the first-year principal reduction
// implied by the flat interest approximation.
func CalculateYearOnePrincipal(loanAmount, annualInterestRate, termYears float64) float64 {
	return CalculateAnnualPayment(loanAmount, annualInterestRate, termYears) -
		CalculateYearOneInterest(loanAmount, annualInterestRate)
}
