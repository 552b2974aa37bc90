package memory

import (
	"context"
	"sync"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/core/tx"
	"pharmacy/internal/domain/documents/sale"
)

var _ sale.Repository = (*SaleStore)(nil)

// SaleStore is the append-only sale history.
type SaleStore struct {
	mu       sync.RWMutex
	sales    []*sale.Sale
	byNumber map[string]*sale.Sale
}

// NewSaleStore creates an empty history.
func NewSaleStore() *SaleStore {
	return &SaleStore{byNumber: make(map[string]*sale.Sale)}
}

// Append stores a committed sale.
func (s *SaleStore) Append(ctx context.Context, doc *sale.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byNumber[doc.Number]; ok {
		return apperror.NewDuplicate("sale", "number", doc.Number)
	}
	s.sales = append(s.sales, doc)
	s.byNumber[doc.Number] = doc

	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.byNumber, doc.Number)
		if n := len(s.sales); n > 0 && s.sales[n-1] == doc {
			s.sales = s.sales[:n-1]
		}
	})
	return nil
}

// List returns sales in commit order.
func (s *SaleStore) List(ctx context.Context) ([]*sale.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*sale.Sale(nil), s.sales...), nil
}

// GetByNumber retrieves a sale by its number.
func (s *SaleStore) GetByNumber(ctx context.Context, number string) (*sale.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.byNumber[number]
	if !ok {
		return nil, apperror.NewNotFound("sale", number)
	}
	return doc, nil
}
