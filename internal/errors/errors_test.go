package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "golibrary/internal/errors"
)

func TestMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"validation", apperror.NewValidationError("x"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"domain", apperror.NewDomainError("x"), http.StatusBadRequest, "DOMAIN_ERROR"},
		{"unauthorized", apperror.NewUnauthorizedError("x"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", apperror.NewForbiddenError("x"), http.StatusForbidden, "FORBIDDEN"},
		{"not found", apperror.NewNotFoundError("x"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", apperror.NewConflictError("x"), http.StatusConflict, "CONFLICT"},
		{"rate limited", apperror.NewRateLimitError("x"), http.StatusTooManyRequests, "RATE_LIMITED"},
		{"internal", apperror.NewInternalError("x", nil), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"untyped", stderrors.New("boom"), http.StatusInternalServerError, "UNKNOWN_ERROR"},
		{"wrapped", fmt.Errorf("camada: %w", apperror.NewNotFoundError("x")), http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, category, _ := apperror.MapToHTTPStatus(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.category, category)
		})
	}
}

func TestMapToHTTPStatus_HidesInternalDetail(t *testing.T) {
	err := apperror.NewDBError("Falha ao buscar livro", stderrors.New("pq: connection refused"))

	_, _, message := apperror.MapToHTTPStatus(err)

	assert.NotContains(t, message, "connection refused")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewDBError_KeepsCause(t *testing.T) {
	err := apperror.NewDBError("Falha ao buscar livro", context.Canceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFieldsOf(t *testing.T) {
	err := apperror.NewValidationError("entrada inválida",
		apperror.FieldError{Field: "isbn", Message: "obrigatório"},
		apperror.FieldError{Field: "title", Message: "obrigatório"},
	)

	assert.Len(t, apperror.FieldsOf(err), 2)
	assert.Nil(t, apperror.FieldsOf(apperror.NewNotFoundError("x")))
	assert.True(t, apperror.IsNotFound(fmt.Errorf("w: %w", apperror.NewNotFoundError("x"))))
}
