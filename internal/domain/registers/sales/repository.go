package sales

import (
	"context"

	"pharmacy/internal/core/id"
)

// Repository defines operations for the sales register.
type Repository interface {
	// CreateMovements stores movements and applies them to the totals.
	// Either all movements are applied or none.
	CreateMovements(ctx context.Context, movements []Movement) error

	// IncrementSaleCount counts one committed sale
	IncrementSaleCount(ctx context.Context) error

	// GetMovementsByRecorder retrieves all movements for a sale
	GetMovementsByRecorder(ctx context.Context, recorderID id.ID) ([]Movement, error)

	// Snapshot returns a copy of the current totals
	Snapshot(ctx context.Context) (*Ledger, error)
}
