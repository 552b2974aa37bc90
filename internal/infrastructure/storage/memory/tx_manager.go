// Package memory provides in-process implementations of the repositories.
// Nothing survives the process.
package memory

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pharmacy/internal/core/tx"
	"pharmacy/pkg/logger"
)

var tracer = otel.Tracer("pharmacy/tx")

// Compile-time check that TxManager implements tx.Manager interface.
var _ tx.Manager = (*TxManager)(nil)

// TxManager serializes units of work and undoes staged writes on failure.
// Repositories stage compensations with tx.OnRollback.
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager creates a new transaction manager.
func NewTxManager() *TxManager {
	return &TxManager{}
}

// RunInTransaction executes fn within a unit of work.
// If a unit of work already exists in ctx, it is reused.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx.UndoLogFrom(ctx) != nil {
		return fn(ctx)
	}

	ctx, span := tracer.Start(ctx, "transaction",
		trace.WithAttributes(attribute.String("tx.store", "memory")))
	defer span.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	txCtx, undo := tx.WithUndoLog(ctx)
	if err := m.execute(txCtx, undo, fn); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "rolled back")
		return err
	}
	return nil
}

// execute runs fn and rolls back on error or panic.
func (m *TxManager) execute(ctx context.Context, undo *tx.UndoLog, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			undo.Rollback()
			logger.Error(ctx, "transaction panicked, rolled back", "panic", r)
			err = fmt.Errorf("transaction panicked: %v", r)
		}
	}()

	if err := fn(ctx); err != nil {
		staged := undo.Len()
		undo.Rollback()
		logger.Debug(ctx, "transaction rolled back", "staged", staged, "error", err)
		return err
	}
	return nil
}
