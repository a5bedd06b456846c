package httpresponse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"golibrary/internal/domain"
	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/logger"
)

// WriteJSON serializa data com o status informado. data nil produz corpo vazio.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError traduz err para o corpo padronizado de erro.
// Erros 5xx são logados com a causa; os demais apenas em debug.
// Se o cliente já desistiu da requisição nada é escrito.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	if errors.Is(err, context.Canceled) {
		log.Debug("Requisição cancelada pelo cliente.", map[string]interface{}{"path": r.URL.Path})
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s (request_id=%s)", category, middleware.GetReqID(r.Context())), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"path":       r.URL.Path,
			"request_id": middleware.GetReqID(r.Context()),
		})
	}

	WriteJSON(w, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
		Errors:   apperror.FieldsOf(err),
	})
}

// DecodeJSON lê o corpo da requisição em dst. Corpo malformado vira ValidationError.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}
