// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"pharmacy/internal/core/entity"
)

// CatalogEntity is a catalog record addressed by a natural key
// (client identifier, laboratory name, medication name).
type CatalogEntity interface {
	entity.Validatable

	// CatalogKey returns the unique key within the entity's store.
	CatalogKey() string
}

// --- Repository Interfaces ---

// CatalogRepository defines storage operations for catalog entities.
// Catalog records are never updated or deleted in this application.
type CatalogRepository[T CatalogEntity] interface {
	// Create inserts a new entity; a taken key yields CodeDuplicate.
	Create(ctx context.Context, entity T) error

	// Get retrieves entity by key; a missing key yields CodeNotFound.
	Get(ctx context.Context, key string) (T, error)

	// Exists checks if entity with given key exists
	Exists(ctx context.Context, key string) (bool, error)

	// List returns all entities in registration order
	List(ctx context.Context) ([]T, error)
}

// --- Hooks ---

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	AfterCreate  HookEvent = "after_create"
)

// Hook is a function that runs at specific lifecycle points.
type Hook[T any] func(ctx context.Context, entity T) error

// HookRegistry stores lifecycle hooks for an entity type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// On registers a hook for the specified event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes all hooks for the specified event, stopping at the first error.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, entity T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

// OnBeforeCreate registers a hook to run before create.
func (r *HookRegistry[T]) OnBeforeCreate(hook Hook[T]) {
	r.On(BeforeCreate, hook)
}

// OnAfterCreate registers a hook to run after create.
func (r *HookRegistry[T]) OnAfterCreate(hook Hook[T]) {
	r.On(AfterCreate, hook)
}
