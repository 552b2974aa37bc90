// Package discount implements the sale discount policy.
//
// Two rules exist: elderly clients (age over 65) get 20%, and purchases
// whose subtotal exceeds 150.00 get 10%. Rules never stack; the greater
// rate wins.
package discount

import (
	"github.com/shopspring/decimal"

	"pharmacy/internal/core/types"
)

// Reason identifies which rule produced the rate.
type Reason string

const (
	ReasonNone    Reason = "none"
	ReasonElderly Reason = "elderly"
	ReasonBulk    Reason = "bulk"
)

// ElderlyAgeThreshold is exclusive: age 65 does not qualify, 66 does.
const ElderlyAgeThreshold = 65

var (
	// ElderlyRate applies when age > ElderlyAgeThreshold.
	ElderlyRate = decimal.RequireFromString("0.20")

	// BulkRate applies when subtotal > BulkThreshold.
	BulkRate = decimal.RequireFromString("0.10")

	// BulkThreshold is exclusive: 150.00 does not qualify, 150.01 does.
	BulkThreshold = decimal.RequireFromString("150.00")
)

// Discount is the outcome of applying the policy to one sale.
type Discount struct {
	Rate   types.Rate  `json:"rate"`
	Reason Reason      `json:"reason"`
	Amount types.Money `json:"amount"`
	Total  types.Money `json:"total"`
}

// Apply computes the discount for a client of the given age buying subtotal.
func Apply(age int, subtotal types.Money) Discount {
	rate, reason := decimal.Zero, ReasonNone

	if subtotal.GreaterThan(BulkThreshold) {
		rate, reason = BulkRate, ReasonBulk
	}
	if age > ElderlyAgeThreshold && ElderlyRate.GreaterThan(rate) {
		rate, reason = ElderlyRate, ReasonElderly
	}

	amount := subtotal.Mul(rate)
	return Discount{
		Rate:   rate,
		Reason: reason,
		Amount: amount,
		Total:  subtotal.Sub(amount),
	}
}

// Equal reports whether both outcomes carry the same rule and amounts.
func (d Discount) Equal(o Discount) bool {
	return d.Reason == o.Reason &&
		d.Rate.Equal(o.Rate) &&
		d.Amount.Equal(o.Amount) &&
		d.Total.Equal(o.Total)
}

// Applied reports whether any rule matched.
func (d Discount) Applied() bool {
	return d.Reason != ReasonNone
}

// Description renders the discount for the receipt.
func (d Discount) Description() string {
	switch d.Reason {
	case ReasonElderly:
		return types.FormatPercent(d.Rate) + " (elderly)"
	case ReasonBulk:
		return types.FormatPercent(d.Rate) + " (purchase over " + types.FormatMoney(BulkThreshold) + ")"
	default:
		return "no discount"
	}
}
