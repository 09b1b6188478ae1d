// Package constants provides shared constants for the property-proforma application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// NightsPerYear is the number of bookable nights in a year
	NightsPerYear = 365

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// DepreciationYears is the IRS recovery period for residential rental
	// property. Not configurable.
	DepreciationYears = 27.5

	// PropertyTaxDeductionCap is the maximum deductible property tax for the
	// owner-occupied scenario. Not configurable.
	PropertyTaxDeductionCap = 10000.0

	// PercentageMultiplier converts decimal fractions to display percentages
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Rounding units used by the property simulator
const (
	// PriceRoundingUnit rounds simulated purchase prices to the nearest $5,000
	PriceRoundingUnit = 5000.0

	// RentRoundingUnit rounds simulated monthly rents to the nearest $50
	RentRoundingUnit = 50.0

	// NightlyRateRoundingUnit rounds simulated nightly rates to the nearest $5
	NightlyRateRoundingUnit = 5.0

	// HOARoundingUnit rounds simulated HOA dues to the nearest $25
	HOARoundingUnit = 25.0

	// UtilitiesRoundingUnit rounds simulated utilities to the nearest $10
	UtilitiesRoundingUnit = 10.0

	// InterestRateRoundingUnit rounds simulated interest rates to the nearest
	// eighth of a point
	InterestRateRoundingUnit = 0.00125

	// DownPaymentRoundingUnit rounds simulated down payment fractions to the
	// nearest 5%
	DownPaymentRoundingUnit = 0.05
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
