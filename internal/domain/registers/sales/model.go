// Package sales provides the session sales accumulation register.
// Totals only grow: there is no reversal of a committed sale.
package sales

import (
	"context"
	"time"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/core/entity"
	"pharmacy/internal/core/id"
	"pharmacy/internal/core/types"
	"pharmacy/internal/domain/catalogs/medication"
)

// Movement is one sold line posted to the register.
type Movement struct {
	entity.MovementBase

	MedicationName string          `json:"medicationName"`
	Kind           medication.Kind `json:"kind"`
	Quantity       int64           `json:"quantity"`
	Revenue        types.Money     `json:"revenue"`
}

// NewMovement creates a movement recorded by a sale.
func NewMovement(recorderID id.ID, recorderType string, period time.Time, med *medication.Medication, quantity int64, revenue types.Money) Movement {
	return Movement{
		MovementBase:   entity.NewMovementBase(recorderID, recorderType, period),
		MedicationName: med.Name,
		Kind:           med.Kind,
		Quantity:       quantity,
		Revenue:        revenue,
	}
}

// Validate checks movement invariants.
func (m Movement) Validate(ctx context.Context) error {
	if m.MedicationName == "" {
		return apperror.NewValidation("medication is required").
			WithDetail("field", "medicationName")
	}
	if !m.Kind.IsValid() {
		return apperror.NewValidation("invalid medication kind").
			WithDetail("field", "kind").
			WithDetail("value", string(m.Kind))
	}
	if m.Quantity <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity").
			WithDetail("medication", m.MedicationName)
	}
	if m.Revenue.IsNegative() {
		return apperror.NewValidation("revenue cannot be negative").
			WithDetail("field", "revenue").
			WithDetail("medication", m.MedicationName)
	}
	return nil
}

// Totals accumulates units and revenue.
type Totals struct {
	Quantity int64       `json:"quantity"`
	Revenue  types.Money `json:"revenue"`
}

// Add returns t increased by quantity and revenue.
func (t Totals) Add(quantity int64, revenue types.Money) Totals {
	return Totals{
		Quantity: t.Quantity + quantity,
		Revenue:  t.Revenue.Add(revenue),
	}
}

// ItemTotals are the session totals of one medication.
type ItemTotals struct {
	MedicationName string          `json:"medicationName"`
	Kind           medication.Kind `json:"kind"`
	Totals
}
