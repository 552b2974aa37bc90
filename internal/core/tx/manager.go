// Package tx provides transaction management abstractions.
// Domain services depend on this interface; the in-memory implementation
// lives in infrastructure/storage/memory.
package tx

import (
	"context"
)

// Manager defines the contract for transaction management.
type Manager interface {
	// RunInTransaction executes fn as one unit of work.
	// Nested calls reuse the unit of work already present in ctx.
	// If fn returns an error, nothing fn staged becomes visible.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UndoLog collects compensating actions staged inside one unit of work.
// Actions run in reverse order on rollback and are discarded on commit.
type UndoLog struct {
	fns []func()
}

type undoLogKey struct{}

// WithUndoLog returns a context carrying a fresh UndoLog.
func WithUndoLog(ctx context.Context) (context.Context, *UndoLog) {
	log := &UndoLog{}
	return context.WithValue(ctx, undoLogKey{}, log), log
}

// UndoLogFrom returns the UndoLog in ctx, or nil outside a unit of work.
func UndoLogFrom(ctx context.Context) *UndoLog {
	if log, ok := ctx.Value(undoLogKey{}).(*UndoLog); ok {
		return log
	}
	return nil
}

// OnRollback stages fn to run if the surrounding unit of work fails.
// Outside a unit of work it does nothing.
func OnRollback(ctx context.Context, fn func()) {
	if log := UndoLogFrom(ctx); log != nil {
		log.fns = append(log.fns, fn)
	}
}

// Rollback runs staged actions newest first.
func (u *UndoLog) Rollback() {
	for i := len(u.fns) - 1; i >= 0; i-- {
		u.fns[i]()
	}
	u.fns = nil
}

// Len returns the number of staged actions.
func (u *UndoLog) Len() int {
	return len(u.fns)
}
