// Package sale provides the Sale document: cart building, quoting and commit.
package sale

import (
	"context"
	"time"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/core/entity"
	"pharmacy/internal/core/id"
	"pharmacy/internal/core/types"
	"pharmacy/internal/domain/catalogs/client"
	"pharmacy/internal/domain/catalogs/medication"
	"pharmacy/internal/domain/discount"
	"pharmacy/internal/domain/registers/sales"
)

// DocumentType is the recorder type written on register movements.
const DocumentType = "Sale"

// Sale is a committed purchase. It is never modified after commit.
type Sale struct {
	entity.Document

	Client *client.Client `json:"client"`

	Subtotal types.Money       `json:"subtotal"`
	Discount discount.Discount `json:"discount"`
	Total    types.Money       `json:"total"`

	// Table part: sold medications
	Lines []Line `json:"lines"`
}

// Line is one sold medication.
type Line struct {
	LineID id.ID `json:"lineId"`
	LineNo int   `json:"lineNo"`

	Medication *medication.Medication `json:"medication"`
	Quantity   int                    `json:"quantity"`
	UnitPrice  types.Money            `json:"unitPrice"`
	Amount     types.Money            `json:"amount"`
}

// NewSale creates an unposted sale for a client.
func NewSale(c *client.Client) *Sale {
	return &Sale{
		Document: entity.NewDocument(),
		Client:   c,
		Subtotal: types.Zero(),
		Total:    types.Zero(),
		Lines:    make([]Line, 0),
	}
}

// AddLine adds a line, capturing the current unit price, and recalculates the subtotal.
// Posted sales are immutable.
func (s *Sale) AddLine(med *medication.Medication, quantity int) error {
	if err := s.CanModify(); err != nil {
		return err
	}
	s.Lines = append(s.Lines, Line{
		LineID:     id.New(),
		LineNo:     len(s.Lines) + 1,
		Medication: med,
		Quantity:   quantity,
		UnitPrice:  med.Price,
		Amount:     types.LineAmount(med.Price, quantity),
	})
	s.recalculateTotals()
	return nil
}

// ApplyDiscount stores the discount outcome and the final total.
func (s *Sale) ApplyDiscount(d discount.Discount) {
	s.Discount = d
	s.Total = d.Total
}

func (s *Sale) recalculateTotals() {
	s.Subtotal = types.Zero()
	for _, line := range s.Lines {
		s.Subtotal = s.Subtotal.Add(line.Amount)
	}
	s.Total = s.Subtotal
}

// TotalQuantity returns the number of units sold.
func (s *Sale) TotalQuantity() int64 {
	var n int64
	for _, line := range s.Lines {
		n += int64(line.Quantity)
	}
	return n
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if err := s.Document.Validate(ctx); err != nil {
		return err
	}

	if s.Client == nil {
		return apperror.NewValidation("client is required").
			WithDetail("field", "client")
	}

	if len(s.Lines) == 0 {
		return apperror.NewEmptyCart()
	}

	for i, line := range s.Lines {
		if line.Medication == nil {
			return apperror.NewValidation("medication is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Quantity <= 0 {
			return apperror.NewInvalidQuantity(line.Quantity).
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// GetDocumentType returns the recorder type.
func (s *Sale) GetDocumentType() string { return DocumentType }

// GenerateMovements creates one register movement per line, in line order.
func (s *Sale) GenerateMovements(at time.Time) []sales.Movement {
	movements := make([]sales.Movement, 0, len(s.Lines))
	for _, line := range s.Lines {
		movements = append(movements, sales.NewMovement(
			s.ID,
			s.GetDocumentType(),
			at,
			line.Medication,
			int64(line.Quantity),
			line.Amount,
		))
	}
	return movements
}
