package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	plain := NewValidation("name is required")
	assert.Equal(t, "VALIDATION_ERROR: name is required", plain.Error())

	withCause := NewInternal(errors.New("connection refused"))
	assert.Contains(t, withCause.Error(), "caused by: connection refused")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("row scan failed")
	err := NewInternal(cause)

	assert.True(t, errors.Is(err, cause))

	wrapped := fmt.Errorf("save document: %w", err)
	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeInternal, appErr.Code)
}

func TestAppError_WithDetail(t *testing.T) {
	err := NewValidation("bad input").
		WithDetail("field", "quantity").
		WithDetail("reason", "must be positive")

	assert.Equal(t, "quantity", err.Details["field"])
	assert.Equal(t, "must be positive", err.Details["reason"])
}

func TestFactories(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"validation", NewValidation("x"), CodeValidation, http.StatusBadRequest},
		{"not found", NewNotFound("Item", "42"), CodeNotFound, http.StatusNotFound},
		{"business rule", NewBusinessRule(CodeDocumentPosted, "x"), CodeDocumentPosted, http.StatusUnprocessableEntity},
		{"insufficient stock", NewInsufficientStock("item-1", 10, 4), CodeInsufficientStock, http.StatusUnprocessableEntity},
		{"invalid transition", NewInvalidTransition("GRN", "draft", "completed"), CodeInvalidTransition, http.StatusUnprocessableEntity},
		{"unbalanced entry", NewUnbalancedEntry("100.00", "90.00"), CodeUnbalancedEntry, http.StatusUnprocessableEntity},
		{"concurrent modification", NewConcurrentModification("Item", "42"), CodeConcurrentModification, http.StatusConflict},
		{"duplicate", NewDuplicate("Item", "code", "ABC"), CodeDuplicate, http.StatusConflict},
		{"conflict", NewConflict("x"), CodeConflict, http.StatusConflict},
		{"internal", NewInternal(errors.New("x")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		})
	}
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(NewNotFound("Item", "1")))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("Item", "1")))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", NewNotFound("Item", "1"))))
	assert.False(t, IsNotFound(NewValidation("x")))
	assert.False(t, IsNotFound(errors.New("plain")))
}
