package sale

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pharmacy/internal/core/apperror"
	corenum "pharmacy/internal/core/numerator"
	"pharmacy/internal/core/tx"
	"pharmacy/internal/core/types"
	"pharmacy/internal/domain/catalogs/client"
	"pharmacy/internal/domain/discount"
	"pharmacy/internal/domain/registers/sales"
	"pharmacy/pkg/logger"
	"pharmacy/pkg/numerator"
)

var tracer = otel.Tracer("pharmacy/sale")

// DefaultNumberPrefix is used when ServiceConfig.NumberPrefix is empty.
const DefaultNumberPrefix = "VD"

// Quote is the priced, not yet committed, outcome of a cart.
type Quote struct {
	ClientAge  int               `json:"clientAge"`
	Subtotal   types.Money       `json:"subtotal"`
	Discount   discount.Discount `json:"discount"`
	Total      types.Money       `json:"total"`
	Controlled []string          `json:"controlled,omitempty"`
	LineCount  int               `json:"lineCount"`
}

// HasControlledSubstance reports whether the operator must check a prescription.
func (q Quote) HasControlledSubstance() bool {
	return len(q.Controlled) > 0
}

// Service quotes and commits sales.
type Service struct {
	repo      Repository
	register  *sales.Register
	numerator corenum.Generator
	txManager tx.Manager
	metrics   Metrics
	numberCfg corenum.Config
	now       func() time.Time
}

// ServiceConfig configures the sale service.
type ServiceConfig struct {
	Repo      Repository
	Register  *sales.Register
	Numerator corenum.Generator
	TxManager tx.Manager

	Metrics      Metrics          // Optional
	NumberPrefix string           // Optional, defaults to DefaultNumberPrefix
	Clock        func() time.Time // Optional, defaults to time.Now
}

// NewService creates a new sale service.
func NewService(cfg ServiceConfig) *Service {
	prefix := cfg.NumberPrefix
	if prefix == "" {
		prefix = DefaultNumberPrefix
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		repo:      cfg.Repo,
		register:  cfg.Register,
		numerator: cfg.Numerator,
		txManager: cfg.TxManager,
		metrics:   metrics,
		numberCfg: corenum.DefaultConfig(prefix),
		now:       clock,
	}
}

// Quote prices cart for c as of asOf. The cart is not modified.
func (s *Service) Quote(cart *Cart, c *client.Client, asOf time.Time) (Quote, error) {
	if cart == nil || cart.IsEmpty() {
		return Quote{}, apperror.NewEmptyCart()
	}
	if c == nil {
		return Quote{}, apperror.NewValidation("client is required").
			WithDetail("field", "client")
	}

	age := c.Age(asOf)
	subtotal := cart.Subtotal()
	d := discount.Apply(age, subtotal)

	return Quote{
		ClientAge:  age,
		Subtotal:   subtotal,
		Discount:   d,
		Total:      d.Total,
		Controlled: cart.ControlledNames(),
		LineCount:  cart.Len(),
	}, nil
}

// Commit records the quoted cart as a sale.
// The discount is recomputed for c; a quote priced for another client,
// cart or rule outcome is rejected.
// Numbering, history and statistics change together or not at all.
func (s *Service) Commit(ctx context.Context, cart *Cart, c *client.Client, q Quote) (*Sale, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, apperror.NewEmptyCart()
	}
	if c == nil {
		return nil, apperror.NewValidation("client is required").
			WithDetail("field", "client")
	}
	if !cart.Subtotal().Equal(q.Subtotal) || cart.Len() != q.LineCount {
		return nil, apperror.NewValidation("quote does not match the cart").
			WithDetail("quoted_subtotal", types.FormatMoney(q.Subtotal)).
			WithDetail("cart_subtotal", types.FormatMoney(cart.Subtotal()))
	}

	age := c.Age(s.now())
	d := discount.Apply(age, cart.Subtotal())
	if age != q.ClientAge || !d.Equal(q.Discount) || !d.Total.Equal(q.Total) {
		return nil, apperror.NewValidation("quote does not match the client").
			WithDetail("client", c.ClientID).
			WithDetail("client_age", age).
			WithDetail("quoted_age", q.ClientAge).
			WithDetail("quoted_total", types.FormatMoney(q.Total)).
			WithDetail("expected_total", types.FormatMoney(d.Total))
	}

	doc := NewSale(c)
	for _, line := range cart.Lines() {
		if err := doc.AddLine(line.Medication, line.Quantity); err != nil {
			return nil, err
		}
	}
	doc.ApplyDiscount(d)
	controlled := cart.ControlledNames()

	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "sale.commit",
		trace.WithAttributes(
			attribute.String("sale.client", c.ClientID),
			attribute.Int("sale.lines", len(doc.Lines)),
		))
	defer span.End()

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		at := s.now()

		number, err := s.numerator.GetNextNumber(ctx, s.numberCfg, at)
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
		doc.MarkPosted(at)

		if err := s.repo.Append(ctx, doc); err != nil {
			return fmt.Errorf("append sale: %w", err)
		}
		if err := s.register.RecordSale(ctx, doc.ID, doc.GenerateMovements(at)); err != nil {
			return fmt.Errorf("record sale: %w", err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "commit failed")
		logger.Error(ctx, "sale commit failed", "client", c.ClientID, "error", err)
		return nil, err
	}

	span.SetAttributes(attribute.String("sale.number", doc.Number))

	logger.Info(ctx, "sale committed",
		"number", doc.Number,
		"client", c.ClientID,
		"total", types.FormatMoney(doc.Total),
		"lines", len(doc.Lines),
		"discount", string(doc.Discount.Reason),
	)

	s.metrics.ObserveSale(doc)
	if len(controlled) > 0 {
		s.metrics.ObserveControlledAlert(controlled)
	}

	return doc, nil
}

// History returns committed sales in commit order.
func (s *Service) History(ctx context.Context) ([]*Sale, error) {
	return s.repo.List(ctx)
}

// GetByNumber retrieves a committed sale. Malformed numbers yield CodeInvalidInput.
func (s *Service) GetByNumber(ctx context.Context, number string) (*Sale, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if numerator.ParseNumber(number) <= 0 {
		return nil, apperror.NewInvalidInput("sale number must look like " + s.numberCfg.Prefix + "-YYYY-NNNNN").
			WithDetail("value", number)
	}
	return s.repo.GetByNumber(ctx, number)
}
