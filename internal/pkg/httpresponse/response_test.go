package httpresponse_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golibrary/internal/domain"
	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/httpresponse"
	"golibrary/internal/pkg/logger"
)

func TestWriteError_ValidationCarriesFields(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/books", nil)
	err := apperror.NewValidationError("dados do livro inválidos",
		apperror.FieldError{Field: "isbn", Message: "isbn é obrigatório"})

	httpresponse.WriteError(rec, req, logger.NewWithWriter(io.Discard, "debug"), err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Category)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "isbn", body.Errors[0].Field)
}

func TestWriteError_InternalIsLoggedAndHidden(t *testing.T) {
	var logs bytes.Buffer
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)

	httpresponse.WriteError(rec, req, logger.NewWithWriter(&logs, "info"),
		apperror.NewDBError("Falha ao listar livros", errors.New("pq: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, logs.String(), "connection refused")
}

func TestWriteError_CanceledWritesNothing(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)

	httpresponse.WriteError(rec, req, logger.NewWithWriter(io.Discard, "info"),
		apperror.NewDBError("Falha ao listar livros", context.Canceled))

	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader("{isbn"))
	var in domain.BookInput

	err := httpresponse.DecodeJSON(req, &in)

	assert.IsType(t, &apperror.ValidationError{}, err)
}
