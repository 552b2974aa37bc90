package medication

import (
	"context"
	"strings"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/core/tx"
	"pharmacy/internal/domain"
	"pharmacy/internal/domain/filter"
	"pharmacy/pkg/logger"
)

// SearchMode selects how Search interprets its query.
type SearchMode string

const (
	SearchByName        SearchMode = "name"
	SearchByLaboratory  SearchMode = "laboratory"
	SearchByDescription SearchMode = "description"
	SearchByExpression  SearchMode = "expression"
)

// LaboratoryChecker confirms a laboratory is registered.
type LaboratoryChecker interface {
	Exists(ctx context.Context, name string) (bool, error)
}

// Service provides business logic for the Medication catalog.
type Service struct {
	*domain.CatalogService[*Medication]
	repo Repository
}

// NewService creates a new Medication service.
// When labs is non-nil, medications may only reference registered laboratories.
func NewService(repo Repository, labs LaboratoryChecker, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Medication]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "medication",
	})

	if labs != nil {
		base.Hooks().OnBeforeCreate(func(ctx context.Context, m *Medication) error {
			ok, err := labs.Exists(ctx, m.LaboratoryName())
			if err != nil {
				return err
			}
			if !ok {
				return apperror.NewNotFound("laboratory", m.LaboratoryName())
			}
			return nil
		})
	}

	return &Service{CatalogService: base, repo: repo}
}

// GetByName resolves a medication by its exact name.
func (s *Service) GetByName(ctx context.Context, name string) (*Medication, error) {
	return s.Get(ctx, strings.TrimSpace(name))
}

// FindByLaboratory returns medications whose laboratory name equals name, ignoring case.
func (s *Service) FindByLaboratory(ctx context.Context, name string) ([]*Medication, error) {
	return s.repo.FindBy(ctx, filter.Item{
		Field:    filter.VarLaboratory,
		Operator: filter.EqualFold,
		Value:    strings.TrimSpace(name),
	})
}

// FindByDescription returns medications whose description contains text, ignoring case.
func (s *Service) FindByDescription(ctx context.Context, text string) ([]*Medication, error) {
	return s.repo.FindBy(ctx, filter.Item{
		Field:    filter.VarDescription,
		Operator: filter.Contains,
		Value:    strings.TrimSpace(text),
	})
}

// FindByExpression returns medications for which the CEL expression holds.
func (s *Service) FindByExpression(ctx context.Context, src string) ([]*Medication, error) {
	expr, err := filter.Compile(src)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []*Medication
	for _, m := range all {
		ok, err := expr.Match(m.FilterVars())
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, m)
		}
	}
	logger.Debug(ctx, "medication expression evaluated", "expression", src, "matches", len(out))
	return out, nil
}

// Search dispatches to the lookup selected by mode.
// Name lookups return zero or one medication; an unknown name is not an error.
func (s *Service) Search(ctx context.Context, mode SearchMode, query string) ([]*Medication, error) {
	switch mode {
	case SearchByName:
		m, err := s.GetByName(ctx, query)
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return []*Medication{m}, nil
	case SearchByLaboratory:
		return s.FindByLaboratory(ctx, query)
	case SearchByDescription:
		return s.FindByDescription(ctx, query)
	case SearchByExpression:
		return s.FindByExpression(ctx, query)
	default:
		return nil, apperror.NewInvalidInput("unknown search mode").WithDetail("mode", string(mode))
	}
}
