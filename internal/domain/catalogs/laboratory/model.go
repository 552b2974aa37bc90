// Package laboratory provides the Laboratory catalog: medication manufacturers.
package laboratory

import (
	"context"
	"fmt"
	"strings"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/core/entity"
)

// Laboratory represents a medication manufacturer/supplier.
type Laboratory struct {
	entity.Catalog

	Address string `json:"address"`
	Phone   string `json:"phone"`
	City    string `json:"city"`

	// Region is the state/region code, stored upper-case (e.g. "SP")
	Region string `json:"region"`
}

// NewLaboratory creates a new Laboratory with required fields.
func NewLaboratory(name, address, phone, city, region string) *Laboratory {
	return &Laboratory{
		Catalog: entity.NewCatalog(name),
		Address: strings.TrimSpace(address),
		Phone:   strings.TrimSpace(phone),
		City:    strings.TrimSpace(city),
		Region:  strings.ToUpper(strings.TrimSpace(region)),
	}
}

// CatalogKey implements domain.CatalogEntity.
func (l *Laboratory) CatalogKey() string {
	return l.Name
}

// Validate implements entity.Validatable interface.
func (l *Laboratory) Validate(ctx context.Context) error {
	if err := l.Catalog.Validate(ctx); err != nil {
		return err
	}
	if l.Region == "" {
		return apperror.NewValidation("region is required").
			WithDetail("field", "region")
	}
	return nil
}

// Location renders "City-REGION" for listings.
func (l *Laboratory) Location() string {
	return fmt.Sprintf("%s-%s", l.City, l.Region)
}
