// Package context carries operator session values through the call chain.
package context

import (
	"context"

	"github.com/google/uuid"
)

// SessionContext identifies one run of the point-of-sale console.
type SessionContext struct {
	SessionID string
	Operator  string
}

type sessionContextKey struct{}

// NewSessionContext creates a SessionContext with a generated session ID.
func NewSessionContext(operator string) *SessionContext {
	return &SessionContext{
		SessionID: uuid.New().String(),
		Operator:  operator,
	}
}

// WithSession adds SessionContext to context.
func WithSession(ctx context.Context, session *SessionContext) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// GetSession returns SessionContext from context.
func GetSession(ctx context.Context) *SessionContext {
	if v, ok := ctx.Value(sessionContextKey{}).(*SessionContext); ok {
		return v
	}
	return nil
}

// GetSessionID returns session ID from context or empty string.
func GetSessionID(ctx context.Context) string {
	if s := GetSession(ctx); s != nil {
		return s.SessionID
	}
	return ""
}

// GetOperator returns the operator name from context or empty string.
func GetOperator(ctx context.Context) string {
	if s := GetSession(ctx); s != nil {
		return s.Operator
	}
	return ""
}
