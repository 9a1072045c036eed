package pricing

import "github.com/shopspring/decimal"

// RoundCurrency rounds a monetary value to two decimal places using
// round-half-away-from-zero, the conventional currency rounding. This is the
// single rounding point for receipt totals; line amounts are kept unrounded.
func RoundCurrency(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}
