package memory

import (
	"context"
	"sync"

	"pharmacy/internal/core/id"
	"pharmacy/internal/core/tx"
	"pharmacy/internal/domain/registers/sales"
)

var _ sales.Repository = (*SalesRegisterStore)(nil)

// SalesRegisterStore keeps register movements and the running totals.
type SalesRegisterStore struct {
	mu        sync.RWMutex
	ledger    *sales.Ledger
	movements []sales.Movement
}

// NewSalesRegisterStore creates an empty register.
func NewSalesRegisterStore() *SalesRegisterStore {
	return &SalesRegisterStore{ledger: sales.NewLedger()}
}

// CreateMovements applies movements to a copy of the totals and swaps it in
// only when every movement applied.
func (s *SalesRegisterStore) CreateMovements(ctx context.Context, movements []sales.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.ledger.Clone()
	for _, m := range movements {
		if err := next.Apply(m); err != nil {
			return err
		}
	}

	s.stageRestore(ctx)
	s.ledger = next
	s.movements = append(s.movements, movements...)
	return nil
}

// IncrementSaleCount counts one committed sale.
func (s *SalesRegisterStore) IncrementSaleCount(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stageRestore(ctx)
	next := s.ledger.Clone()
	next.CountSale()
	s.ledger = next
	return nil
}

// stageRestore registers a rollback to the current state. Callers hold mu.
func (s *SalesRegisterStore) stageRestore(ctx context.Context) {
	prevLedger := s.ledger
	prevLen := len(s.movements)
	tx.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.ledger = prevLedger
		s.movements = s.movements[:prevLen]
	})
}

// GetMovementsByRecorder retrieves all movements for a sale.
func (s *SalesRegisterStore) GetMovementsByRecorder(ctx context.Context, recorderID id.ID) ([]sales.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []sales.Movement
	for _, m := range s.movements {
		if m.RecorderID == recorderID {
			out = append(out, m)
		}
	}
	return out, nil
}

// Snapshot returns a copy of the current totals.
func (s *SalesRegisterStore) Snapshot(ctx context.Context) (*sales.Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Clone(), nil
}
