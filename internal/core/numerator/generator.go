package numerator

import (
	"context"
	"time"
)

// Generator generates sequential document numbers.
// Implementations live in pkg/numerator.
type Generator interface {
	// GetNextNumber generates the next document number.
	// Pattern: PREFIX-YEAR-XXXXX (e.g., VD-2026-00001)
	GetNextNumber(ctx context.Context, cfg Config, period time.Time) (string, error)
}
