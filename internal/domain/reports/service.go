package reports

import (
	"context"
	"fmt"
	"sort"

	"pharmacy/internal/domain/catalogs/client"
	"pharmacy/internal/domain/catalogs/medication"
	"pharmacy/internal/domain/documents/sale"
	"pharmacy/internal/domain/registers/sales"
)

// ClientSource lists registered clients.
type ClientSource interface {
	List(ctx context.Context) ([]*client.Client, error)
}

// MedicationSource lists registered medications.
type MedicationSource interface {
	List(ctx context.Context) ([]*medication.Medication, error)
}

// StatisticsSource provides the running session totals.
type StatisticsSource interface {
	Snapshot(ctx context.Context) (*sales.Ledger, error)
}

// SaleSource provides committed sales.
type SaleSource interface {
	History(ctx context.Context) ([]*sale.Sale, error)
}

// Service provides report generation operations.
type Service struct {
	clients     ClientSource
	medications MedicationSource
	statistics  StatisticsSource
	sales       SaleSource
}

// NewService creates a new reports service.
func NewService(clients ClientSource, medications MedicationSource, statistics StatisticsSource, sales SaleSource) *Service {
	return &Service{
		clients:     clients,
		medications: medications,
		statistics:  statistics,
		sales:       sales,
	}
}

// Clients returns registered clients sorted A-Z by name, ignoring case.
func (s *Service) Clients(ctx context.Context) ([]*client.Client, error) {
	list, err := s.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].SortKey() < list[j].SortKey()
	})
	return list, nil
}

// Medications returns all medications sorted A-Z by name, ignoring case.
func (s *Service) Medications(ctx context.Context) ([]*medication.Medication, error) {
	list, err := s.medications.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	sortMedications(list)
	return list, nil
}

// MedicationsByKind returns medications of one kind sorted A-Z.
func (s *Service) MedicationsByKind(ctx context.Context, kind medication.Kind) ([]*medication.Medication, error) {
	all, err := s.Medications(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*medication.Medication, 0, len(all))
	for _, m := range all {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out, nil
}

func sortMedications(list []*medication.Medication) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].SortKey() < list[j].SortKey()
	})
}

// SessionStatistics builds the end-of-session report.
func (s *Service) SessionStatistics(ctx context.Context) (*Statistics, error) {
	ledger, err := s.statistics.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot statistics: %w", err)
	}

	stats := &Statistics{
		SaleCount:    ledger.SaleCount(),
		Chemotherapy: ledger.Category(medication.KindChemotherapy),
		Phytotherapy: ledger.Category(medication.KindPhytotherapy),
		Items:        ledger.Items(),
	}
	if best, ok := ledger.MostSold(); ok {
		stats.BestSeller = &best
	}
	return stats, nil
}

// SaleHistory returns committed sales in commit order.
func (s *Service) SaleHistory(ctx context.Context) ([]*sale.Sale, error) {
	list, err := s.sales.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return list, nil
}
