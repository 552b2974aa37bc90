package laboratory

import (
	"pharmacy/internal/core/tx"
	"pharmacy/internal/domain"
)

// Service provides business logic for the Laboratory catalog.
type Service struct {
	*domain.CatalogService[*Laboratory]
}

// NewService creates a new Laboratory service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Laboratory]{
			Repo:       repo,
			TxManager:  txManager,
			EntityName: "laboratory",
		}),
	}
}
