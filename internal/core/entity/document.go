package entity

import (
	"context"
	"time"

	"pharmacy/internal/core/apperror"
)

// Document is the base type for business transactions.
// Example: Sale.
type Document struct {
	BaseEntity

	// Number is the document number (auto-generated, unique within type+year)
	Number string `json:"number"`

	// Date is the business date of the document
	Date time.Time `json:"date"`

	// Posted indicates the document movements are recorded in registers
	Posted bool `json:"posted"`
}

// NewDocument creates a new Document with generated ID.
func NewDocument() Document {
	base := NewBaseEntity()
	return Document{
		BaseEntity: base,
		Date:       base.CreatedAt,
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}
	return nil
}

// CanModify checks if document can be modified.
// Posted documents are immutable.
func (d *Document) CanModify() error {
	if d.Posted {
		return apperror.NewValidation("document is already posted").
			WithDetail("document_id", d.ID.String()).
			WithDetail("number", d.Number)
	}
	return nil
}

// MarkPosted sets the posted flag and stamps the posting time.
func (d *Document) MarkPosted(at time.Time) {
	d.Posted = true
	d.Date = at
}
