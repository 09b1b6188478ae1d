// Package format renders core figures as display strings. This is the
// presentation boundary: non-finite values are substituted with zero here and
// nowhere else, and fraction-to-percent conversion happens here and nowhere
// else.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/property-proforma/pkg/constants"
)

// Finite substitutes zero for NaN and infinities, leaving finite values
// untouched. Degenerate engine output must be caught at this boundary rather
// than inside the core.
func Finite(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	amount = Finite(amount)
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	amount = Finite(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	return sign + formatted
}

// Percent renders a decimal fraction as a display percentage with two
// decimals (e.g., 0.065 -> "6.50%").
func Percent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", Finite(fraction)*constants.PercentageMultiplier)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
