package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := NewNotFound("client", "123")
	assert.Equal(t, "NOT_FOUND: client not found", err.Error())

	cause := errors.New("boom")
	wrapped := NewInternal(cause)
	assert.Equal(t, "INTERNAL_ERROR: internal error (caused by: boom)", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestAppError_WithDetail(t *testing.T) {
	err := NewValidation("price must not be negative").
		WithDetail("field", "price").
		WithDetail("value", "-1")

	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, map[string]any{"field": "price", "value": "-1"}, err.Details)
}

func TestIs_FindsCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("register sale: %w", NewEmptyCart())

	assert.True(t, IsAppError(err))
	assert.True(t, Is(err, CodeEmptyCart))
	assert.False(t, IsNotFound(err))

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "no items were added to the sale", appErr.Message)
}

func TestFactories(t *testing.T) {
	q := NewInvalidQuantity(0)
	assert.Equal(t, CodeInvalidQuantity, q.Code)
	assert.Equal(t, 0, q.Details["quantity"])

	dup := NewDuplicate("medication", "name", "Guaco")
	assert.True(t, IsDuplicate(dup))
	assert.Equal(t, "medication with this name already exists", dup.Message)

	assert.Equal(t, CodeInvalidInput, NewInvalidInput("bad date").Code)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "client not found", UserMessage(NewNotFound("client", "1")))
	assert.Equal(t, "unexpected error", UserMessage(errors.New("disk on fire")))
}
