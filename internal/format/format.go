// Package format renders money and percentages for display. All
// rounding is half away from zero at two decimal places unless stated.
package format

import (
	"strings"

	"github.com/shopspring/decimal"

	"metalfolio/internal/models"
)

// MoneyPlaces is the number of decimal places monetary values are shown with.
const MoneyPlaces = 2

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(MoneyPlaces).InexactFloat64()
}

// Currency renders v with the currency symbol, thousands separators and at
// most two decimals, e.g. "₨180,700" or "-$1,234.5".
func Currency(v float64, c models.Currency) string {
	d := decimal.NewFromFloat(v).Round(MoneyPlaces)
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + c.Symbol() + group(d.Abs().String())
}

// CurrencyWithSign is Currency with an explicit "+" for non-negative values.
func CurrencyWithSign(v float64, c models.Currency) string {
	s := Currency(v, c)
	if !strings.HasPrefix(s, "-") {
		return "+" + s
	}
	return s
}

// Percentage renders v with an explicit sign and the given number of
// decimals, e.g. "+8.3%".
func Percentage(v float64, decimals int32) string {
	d := decimal.NewFromFloat(v).Round(decimals)
	sign := "+"
	if d.IsNegative() {
		sign = "-"
	}
	return sign + d.Abs().StringFixed(decimals) + "%"
}

// group inserts thousands separators into an unsigned decimal string.
func group(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	if hasFrac {
		return intPart + "." + frac
	}
	return intPart
}
