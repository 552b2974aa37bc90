// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits used when money is displayed.
const MoneyPlaces int32 = 2

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// Rate is a fractional multiplier such as a discount rate (0.20 = 20%).
type Rate = decimal.Decimal

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// LineAmount returns price multiplied by an integer quantity.
func LineAmount(price Money, quantity int) Money {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// FormatMoney renders m with two decimals (half-away-from-zero rounding).
func FormatMoney(m Money) string {
	return m.StringFixed(MoneyPlaces)
}

// FormatPercent renders a rate as a whole percentage, e.g. 0.2 -> "20%".
func FormatPercent(r Rate) string {
	return r.Shift(2).StringFixed(0) + "%"
}
