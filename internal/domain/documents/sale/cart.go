package sale

import (
	"pharmacy/internal/core/apperror"
	"pharmacy/internal/core/types"
	"pharmacy/internal/domain/catalogs/medication"
)

// CartLine is a medication and quantity staged for sale.
type CartLine struct {
	Medication *medication.Medication
	Quantity   int
}

// Amount returns price × quantity.
func (l CartLine) Amount() types.Money {
	return types.LineAmount(l.Medication.Price, l.Quantity)
}

// Cart accumulates lines for one sale in progress.
// The zero value is an empty cart ready to use.
type Cart struct {
	lines []CartLine
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem appends a line. Non-positive quantities are rejected and leave the cart unchanged.
func (c *Cart) AddItem(med *medication.Medication, quantity int) error {
	if med == nil {
		return apperror.NewValidation("medication is required").
			WithDetail("field", "medication")
	}
	if quantity <= 0 {
		return apperror.NewInvalidQuantity(quantity).
			WithDetail("medication", med.Name)
	}
	c.lines = append(c.lines, CartLine{Medication: med, Quantity: quantity})
	return nil
}

// Subtotal returns the sum of line amounts.
func (c *Cart) Subtotal() types.Money {
	total := types.Zero()
	for _, l := range c.lines {
		total = total.Add(l.Amount())
	}
	return total
}

// HasControlledSubstance reports whether any line needs a prescription.
func (c *Cart) HasControlledSubstance() bool {
	for _, l := range c.lines {
		if l.Medication.IsControlled() {
			return true
		}
	}
	return false
}

// ControlledNames returns the names of controlled medications in cart order, each once.
func (c *Cart) ControlledNames() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, l := range c.lines {
		if !l.Medication.IsControlled() {
			continue
		}
		if _, ok := seen[l.Medication.Name]; ok {
			continue
		}
		seen[l.Medication.Name] = struct{}{}
		names = append(names, l.Medication.Name)
	}
	return names
}

// Lines returns a copy of the staged lines.
func (c *Cart) Lines() []CartLine {
	return append([]CartLine(nil), c.lines...)
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether no line was added.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
