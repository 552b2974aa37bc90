package sales

import (
	"context"
	"fmt"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/core/id"
	"pharmacy/internal/domain/catalogs/medication"
	"pharmacy/pkg/logger"
)

// Register provides business operations for the sales register.
// Transactions are managed by the caller (sale finalizer).
type Register struct {
	repo Repository
}

// NewRegister creates a new sales register service.
func NewRegister(repo Repository) *Register {
	return &Register{repo: repo}
}

// record posts a single movement without counting a sale.
func (r *Register) record(ctx context.Context, m Movement) error {
	if err := m.Validate(ctx); err != nil {
		return err
	}
	if err := r.repo.CreateMovements(ctx, []Movement{m}); err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// RecordSale posts every line of a committed sale and counts the sale once.
// All movements are validated before any is applied.
func (r *Register) RecordSale(ctx context.Context, saleID id.ID, movements []Movement) error {
	if id.IsNil(saleID) {
		return apperror.NewValidation("sale id is required")
	}
	if len(movements) == 0 {
		return apperror.NewEmptyCart()
	}

	for i, m := range movements {
		if m.RecorderID != saleID {
			return apperror.NewValidation(fmt.Sprintf("movement %d: recorder does not match sale", i)).
				WithDetail("sale_id", saleID.String())
		}
		if err := m.Validate(ctx); err != nil {
			return err
		}
	}

	if err := r.repo.CreateMovements(ctx, movements); err != nil {
		return fmt.Errorf("create movements: %w", err)
	}
	if err := r.repo.IncrementSaleCount(ctx); err != nil {
		return fmt.Errorf("increment sale count: %w", err)
	}

	logger.Debug(ctx, "recorded sale movements",
		"count", len(movements),
		"recorder_id", saleID,
	)
	return nil
}

// MostSold returns the best-selling medication of the session.
// The boolean is false when nothing has been sold.
func (r *Register) MostSold(ctx context.Context) (ItemTotals, bool, error) {
	l, err := r.repo.Snapshot(ctx)
	if err != nil {
		return ItemTotals{}, false, err
	}
	item, ok := l.MostSold()
	return item, ok, nil
}

// SessionSaleCount returns the number of committed sales.
func (r *Register) SessionSaleCount(ctx context.Context) (int, error) {
	l, err := r.repo.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return l.SaleCount(), nil
}

// Item returns the totals for one medication; unsold medications yield zero totals.
func (r *Register) Item(ctx context.Context, name string) (ItemTotals, error) {
	l, err := r.repo.Snapshot(ctx)
	if err != nil {
		return ItemTotals{}, err
	}
	item, _ := l.Item(name)
	item.MedicationName = name
	return item, nil
}

// Category returns the totals for a medication kind.
func (r *Register) Category(ctx context.Context, kind medication.Kind) (Totals, error) {
	l, err := r.repo.Snapshot(ctx)
	if err != nil {
		return Totals{}, err
	}
	return l.Category(kind), nil
}

// Items returns per-medication totals in first-recorded order.
func (r *Register) Items(ctx context.Context) ([]ItemTotals, error) {
	l, err := r.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return l.Items(), nil
}

// Snapshot returns a consistent copy of all session totals.
func (r *Register) Snapshot(ctx context.Context) (*Ledger, error) {
	return r.repo.Snapshot(ctx)
}

// MovementsOf returns the movements posted by a sale.
func (r *Register) MovementsOf(ctx context.Context, saleID id.ID) ([]Movement, error) {
	return r.repo.GetMovementsByRecorder(ctx, saleID)
}
