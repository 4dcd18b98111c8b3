package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// displayPrecision is the number of decimal places shown for derived
// amounts and exchange rates.
const displayPrecision = 6

// IsAmountText reports whether s is acceptable amount input: empty, or
// an unsigned decimal number (digits with at most one decimal point).
func IsAmountText(s string) bool {
	dots := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// ParseAmount parses amount text into a decimal. It returns false for
// empty or unparseable input.
func ParseAmount(value string) (decimal.Decimal, bool) {
	if value == "" || value == "." {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatAmount renders d with a fixed number of decimal places, e.g.
// "0.100000".
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(displayPrecision)
}

// Rate returns how many units of the target asset one unit of the
// source asset buys. It returns false when the target price is zero or
// either price is not a finite number, since no meaningful rate exists.
func Rate(sourcePrice, targetPrice float64) (decimal.Decimal, bool) {
	if !isFinite(sourcePrice) || !isFinite(targetPrice) || targetPrice == 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(sourcePrice).Div(decimal.NewFromFloat(targetPrice)), true
}

// Convert applies an exchange rate to a source amount.
func Convert(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
