package laboratory

import (
	"pharmacy/internal/domain"
)

// Repository defines the interface for Laboratory persistence.
type Repository interface {
	domain.CatalogRepository[*Laboratory]
}
