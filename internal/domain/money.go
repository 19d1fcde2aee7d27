package domain

import "github.com/shopspring/decimal"

// RoundMoney rounds a price to two decimal places, half up on the scaled
// value (0.005 rounds to 0.01, not banker's rounding).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatMoney renders a price with exactly two decimals, e.g. "25.00".
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
