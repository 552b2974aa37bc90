package sale

import (
	"context"
)

// Repository is the append-only sale history.
type Repository interface {
	// Append stores a committed sale
	Append(ctx context.Context, s *Sale) error

	// List returns sales in commit order
	List(ctx context.Context) ([]*Sale, error)

	// GetByNumber retrieves a sale by its number
	GetByNumber(ctx context.Context, number string) (*Sale, error)
}

// Metrics observes committed sales.
type Metrics interface {
	ObserveSale(s *Sale)
	ObserveControlledAlert(names []string)
}

type noopMetrics struct{}

func (noopMetrics) ObserveSale(*Sale)               {}
func (noopMetrics) ObserveControlledAlert([]string) {}
