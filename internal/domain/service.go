// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
	"fmt"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/core/tx"
	"pharmacy/pkg/logger"
)

// CatalogService provides registration and lookup for catalog entities.
type CatalogService[T CatalogEntity] struct {
	repo      CatalogRepository[T]
	txManager tx.Manager
	hooks     *HookRegistry[T]

	// entityName and keyField for error messages
	entityName string
	keyField   string
}

// CatalogServiceConfig configures the catalog service.
type CatalogServiceConfig[T CatalogEntity] struct {
	Repo       CatalogRepository[T]
	TxManager  tx.Manager // Optional; without it Create writes directly
	EntityName string
	KeyField   string
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T CatalogEntity](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	keyField := cfg.KeyField
	if keyField == "" {
		keyField = "name"
	}
	return &CatalogService[T]{
		repo:       cfg.Repo,
		txManager:  cfg.TxManager,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
		keyField:   keyField,
	}
}

// Hooks returns the hook registry for external registration.
func (s *CatalogService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

func (s *CatalogService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	// If entity already returns structured AppError, keep it.
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *CatalogService[T]) normalizeGetErr(err error, key string) error {
	if err == nil {
		return nil
	}
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, key)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("key", key)
}

// Create registers a new catalog entity.
func (s *CatalogService[T]) Create(ctx context.Context, entity T) error {
	// 1. Validate entity invariants
	if err := entity.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	// 2. Run before-create hooks
	if err := s.hooks.Run(ctx, BeforeCreate, entity); err != nil {
		return err
	}

	// 3. Check key uniqueness and insert as one unit
	key := entity.CatalogKey()
	create := func(ctx context.Context) error {
		exists, err := s.repo.Exists(ctx, key)
		if err != nil {
			return fmt.Errorf("check %s: %w", s.entityName, err)
		}
		if exists {
			return apperror.NewDuplicate(s.entityName, s.keyField, key)
		}
		if err := s.repo.Create(ctx, entity); err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	}

	var err error
	if s.txManager != nil {
		err = s.txManager.RunInTransaction(ctx, create)
	} else {
		err = create(ctx)
	}
	if err != nil {
		return err
	}

	logger.Info(ctx, s.entityName+" registered", s.keyField, key)

	// 4. Run after-create hooks; the entity is already stored
	if err := s.hooks.Run(ctx, AfterCreate, entity); err != nil {
		logger.Warn(ctx, "after-create hook failed", "entity", s.entityName, "error", err)
	}

	return nil
}

// Get retrieves entity by key.
func (s *CatalogService[T]) Get(ctx context.Context, key string) (T, error) {
	entity, err := s.repo.Get(ctx, key)
	if err != nil {
		return entity, s.normalizeGetErr(err, key)
	}
	return entity, nil
}

// Exists checks if entity exists.
func (s *CatalogService[T]) Exists(ctx context.Context, key string) (bool, error) {
	return s.repo.Exists(ctx, key)
}

// List retrieves all entities in registration order.
func (s *CatalogService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}
