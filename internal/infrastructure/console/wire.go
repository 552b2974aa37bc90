package console

import (
	"time"

	corenum "pharmacy/internal/core/numerator"
	"pharmacy/internal/domain/catalogs/client"
	"pharmacy/internal/domain/catalogs/laboratory"
	"pharmacy/internal/domain/catalogs/medication"
	"pharmacy/internal/domain/documents/sale"
	"pharmacy/internal/domain/registers/sales"
	"pharmacy/internal/domain/reports"
	"pharmacy/internal/infrastructure/storage/memory"
	"pharmacy/pkg/numerator"
)

// WireConfig holds the optional collaborators of an in-memory session.
type WireConfig struct {
	Numerator    corenum.Generator // defaults to a fresh in-memory numerator
	Metrics      sale.Metrics
	NumberPrefix string
	Clock        func() time.Time
}

// NewInMemoryServices builds every service over fresh in-memory stores.
func NewInMemoryServices(cfg WireConfig) Services {
	txm := memory.NewTxManager()
	if cfg.Numerator == nil {
		cfg.Numerator = numerator.New()
	}

	clientStore := memory.NewClientStore()
	labStore := memory.NewLaboratoryStore()
	medStore := memory.NewMedicationStore()
	registerStore := memory.NewSalesRegisterStore()

	saleService := sale.NewService(sale.ServiceConfig{
		Repo:         memory.NewSaleStore(),
		Register:     sales.NewRegister(registerStore),
		Numerator:    cfg.Numerator,
		TxManager:    txm,
		Metrics:      cfg.Metrics,
		NumberPrefix: cfg.NumberPrefix,
		Clock:        cfg.Clock,
	})

	return Services{
		Clients:      client.NewService(clientStore, txm),
		Laboratories: laboratory.NewService(labStore, txm),
		Medications:  medication.NewService(medStore, labStore, txm),
		Sales:        saleService,
		Reports:      reports.NewService(clientStore, medStore, registerStore, saleService),
	}
}
