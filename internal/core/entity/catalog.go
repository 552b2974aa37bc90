package entity

import (
	"context"
	"strings"

	"pharmacy/internal/core/apperror"
)

// Catalog is the base type for reference data registered by the operator.
// Examples: Client, Laboratory, Medication.
type Catalog struct {
	BaseEntity

	// Name is the display name
	Name string `json:"name"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(name string) Catalog {
	return Catalog{
		BaseEntity: NewBaseEntity(),
		Name:       strings.TrimSpace(name),
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}

// SortKey is the case-insensitive key used by A-Z listings.
func (c *Catalog) SortKey() string {
	return strings.ToLower(c.Name)
}
