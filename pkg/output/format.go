// Package output provides utilities for formatting and displaying proforma results.
package output

import (
	"fmt"

	"github.com/iwvelando/property-proforma/internal/proforma"
	"github.com/iwvelando/property-proforma/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Row is one display line of a proforma: a label and a numeric value that is
// rendered as currency or as a percentage.
type Row struct {
	Label   string
	Value   float64
	Percent bool
}

// Rows flattens a proforma into ordered display rows: the shared base first,
// then the scenario variant.
func Rows(result proforma.Proforma) []Row {
	base := result.Base
	rows := []Row{
		{Label: "Total cash needed", Value: base.TotalCashNeeded},
		{Label: "Annual mortgage payment", Value: base.AnnualMortgagePayment},
		{Label: "Year-1 interest", Value: base.YearOneInterest},
		{Label: "Year-1 principal", Value: base.YearOnePrincipal},
		{Label: "Annual property tax", Value: base.AnnualPropertyTax},
		{Label: "Annual home insurance", Value: base.AnnualHomeInsurance},
		{Label: "Annual HOA", Value: base.AnnualHOA},
		{Label: "Annual utilities", Value: base.AnnualUtilities},
		{Label: "Annual depreciation", Value: base.AnnualDepreciation},
		{Label: "Opportunity cost", Value: base.OpportunityCost},
	}

	if result.Rental != nil {
		r := result.Rental
		rows = append(rows,
			Row{Label: "Gross potential income", Value: r.GrossPotentialIncome},
			Row{Label: "Vacancy loss", Value: r.VacancyLoss},
			Row{Label: "Effective gross income", Value: r.EffectiveGrossIncome},
			Row{Label: "Maintenance", Value: r.Maintenance},
			Row{Label: "Management fee", Value: r.ManagementFee},
			Row{Label: "Platform fee", Value: r.PlatformFee},
			Row{Label: "Total operating expenses", Value: r.TotalOperatingExpenses},
			Row{Label: "Net operating income", Value: r.NetOperatingIncome},
			Row{Label: "Cash flow before tax", Value: r.CashFlowBeforeTax},
			Row{Label: "Tax benefit", Value: r.TaxBenefit},
			Row{Label: "Cash flow after tax", Value: r.CashFlowAfterTax},
			Row{Label: "Cash flow per month", Value: r.CashFlowPerMonth},
			Row{Label: "Cap rate", Value: r.CapRate, Percent: true},
			Row{Label: "Cash-on-cash return", Value: r.CashOnCashReturn, Percent: true},
		)
	}

	if result.Owner != nil {
		o := result.Owner
		rows = append(rows,
			Row{Label: "Gross avoided rent", Value: o.GrossAvoidedRent},
			Row{Label: "Annual PITI", Value: o.AnnualPITI},
			Row{Label: "Total annual cost", Value: o.TotalAnnualCost},
			Row{Label: "Deductible property tax", Value: o.DeductiblePropertyTax},
			Row{Label: "Tax benefit", Value: o.TaxBenefit},
			Row{Label: "Net annual cost", Value: o.NetAnnualCost},
			Row{Label: "Net benefit", Value: o.NetBenefit},
			Row{Label: "Monthly total cost", Value: o.MonthlyTotalCost},
			Row{Label: "Net monthly cost", Value: o.NetMonthlyCost},
		)
	}

	return rows
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(assumptions proforma.AssumptionSet, results []proforma.Proforma) {
	p := message.NewPrinter(language.English)
	_, _ = p.Printf("Analysis of a $%.0f purchase at %s down, %s over %.0f years\n\n",
		assumptions.PurchasePrice,
		format.Percent(assumptions.DownPaymentPercent),
		format.Percent(assumptions.InterestRate),
		assumptions.LoanTermYears)

	for _, result := range results {
		fmt.Printf("--- Results for scenario %s ---\n", result.Scenario)
		fmt.Printf("Metric                   | Value\n")
		fmt.Printf("______                   | _____\n")
		for _, row := range Rows(result) {
			value := format.Currency(row.Value)
			if row.Percent {
				value = format.Percent(row.Value)
			}
			fmt.Printf("%-24s | %s\n", row.Label, value)
		}
		if len(results) > 1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []proforma.Proforma) {
	fmt.Printf("\"scenario\",\"metric\",\"value\"\n")
	for _, result := range results {
		for _, row := range Rows(result) {
			precision := 2
			if row.Percent {
				precision = 6
			}
			fmt.Printf("\"%s\",\"%s\",\"%.*f\"\n", result.Scenario, row.Label, precision, format.Finite(row.Value))
		}
	}
}
