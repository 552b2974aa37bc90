package medication

import (
	"context"

	"pharmacy/internal/domain"
	"pharmacy/internal/domain/filter"
)

// Repository defines the interface for Medication persistence.
type Repository interface {
	domain.CatalogRepository[*Medication]

	// FindBy returns medications matching every item, in registration order.
	FindBy(ctx context.Context, items ...filter.Item) ([]*Medication, error)
}
