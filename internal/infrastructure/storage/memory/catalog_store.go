package memory

import (
	"context"
	"sync"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/core/tx"
	"pharmacy/internal/domain"
)

// CatalogStore provides common operations for catalog entities keyed by CatalogKey.
// Embed this in specific catalog stores.
type CatalogStore[T domain.CatalogEntity] struct {
	mu         sync.RWMutex
	entityName string
	items      map[string]T

	// order keeps keys in registration order
	order []string
}

// NewCatalogStore creates an empty store.
func NewCatalogStore[T domain.CatalogEntity](entityName string) *CatalogStore[T] {
	return &CatalogStore[T]{
		entityName: entityName,
		items:      make(map[string]T),
	}
}

// Create inserts a new entity.
func (s *CatalogStore[T]) Create(ctx context.Context, entity T) error {
	key := entity.CatalogKey()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; ok {
		return apperror.NewDuplicate(s.entityName, "key", key)
	}
	s.items[key] = entity
	s.order = append(s.order, key)

	tx.OnRollback(ctx, func() { s.remove(key) })
	return nil
}

func (s *CatalogStore[T]) remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	for i := len(s.order) - 1; i >= 0; i-- {
		if s.order[i] == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Get retrieves entity by key.
func (s *CatalogStore[T]) Get(ctx context.Context, key string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.items[key]
	if !ok {
		var zero T
		return zero, apperror.NewNotFound(s.entityName, key)
	}
	return entity, nil
}

// Exists checks if entity with given key exists.
func (s *CatalogStore[T]) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[key]
	return ok, nil
}

// List returns all entities in registration order.
func (s *CatalogStore[T]) List(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.items[key])
	}
	return out, nil
}

// Len returns the number of stored entities.
func (s *CatalogStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
