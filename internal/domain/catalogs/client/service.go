package client

import (
	"context"

	"pharmacy/internal/core/tx"
	"pharmacy/internal/domain"
)

// Service provides business logic for the Client catalog.
type Service struct {
	*domain.CatalogService[*Client]
}

// NewService creates a new Client service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Client]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "client",
		KeyField:   "clientId",
	})
	return &Service{CatalogService: base}
}

// GetByID resolves a client by identifier; unknown identifiers yield CodeNotFound.
func (s *Service) GetByID(ctx context.Context, clientID string) (*Client, error) {
	return s.Get(ctx, clientID)
}
