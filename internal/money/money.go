// Package money centralizes monetary arithmetic so every amount that reaches
// the ledger has been rounded the same way.
package money

import "github.com/shopspring/decimal"

// Round2 rounds an amount to two decimal places using half-up rounding
func Round2(amount float64) float64 {
	v, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return v
}

// Percent returns pct percent of base, rounded to two decimal places
func Percent(base, pct float64) float64 {
	v, _ := decimal.NewFromFloat(base).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		Float64()
	return v
}
