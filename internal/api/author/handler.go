package author

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"golibrary/internal/domain"
	"golibrary/internal/pkg/httpresponse"
	"golibrary/internal/pkg/logger"
)

// AuthorService define o contrato que o Handler espera da camada de Serviço.
type AuthorService interface {
	GetAll(ctx context.Context) ([]domain.Author, error)
	GetByID(ctx context.Context, id string) (domain.Author, error)
	GetBooks(ctx context.Context, id string) ([]domain.Book, error)
	Create(ctx context.Context, input domain.AuthorInput) (domain.Author, error)
	Update(ctx context.Context, id string, input domain.AuthorInput) (domain.Author, error)
	Delete(ctx context.Context, id string) error
}

// Handler agrupa os handlers de /api/authors.
type Handler struct {
	Service AuthorService
	Logger  logger.Logger
}

func NewHandler(svc AuthorService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}
	httpresponse.WriteJSON(w, successStatus, data)
}

// ListAuthorsHandler lida com a requisição GET /api/authors.
// @Summary Lista os autores
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Author
// @Router /authors [get]
func (h *Handler) ListAuthorsHandler(w http.ResponseWriter, r *http.Request) {
	authors, err := h.Service.GetAll(r.Context())
	h.respond(w, r, authors, err, http.StatusOK)
}

// GetAuthorHandler lida com a requisição GET /api/authors/{id}.
// @Summary Busca um autor pelo ID
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do autor (UUID)"
// @Success 200 {object} domain.Author
// @Failure 404 {object} domain.ErrorResponse "Autor não encontrado"
// @Router /authors/{id} [get]
func (h *Handler) GetAuthorHandler(w http.ResponseWriter, r *http.Request) {
	author, err := h.Service.GetByID(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, author, err, http.StatusOK)
}

// GetAuthorBooksHandler lida com a requisição GET /api/authors/{id}/books.
// @Summary Lista os livros de um autor
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do autor (UUID)"
// @Success 200 {array} domain.Book
// @Failure 404 {object} domain.ErrorResponse "Autor não encontrado"
// @Router /authors/{id}/books [get]
func (h *Handler) GetAuthorBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := h.Service.GetBooks(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, books, err, http.StatusOK)
}

// CreateAuthorHandler lida com a requisição POST /api/authors.
// @Summary Cadastra um autor
// @Tags authors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param author body domain.AuthorInput true "Dados do autor"
// @Success 201 {object} domain.Author
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Router /authors [post]
func (h *Handler) CreateAuthorHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.AuthorInput
	if err := httpresponse.DecodeJSON(r, &input); err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}
	author, err := h.Service.Create(r.Context(), input)
	h.respond(w, r, author, err, http.StatusCreated)
}

// UpdateAuthorHandler lida com a requisição PUT /api/authors/{id}.
// @Summary Atualiza um autor
// @Tags authors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do autor (UUID)"
// @Param author body domain.AuthorInput true "Dados do autor"
// @Success 200 {object} domain.Author
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Autor não encontrado"
// @Router /authors/{id} [put]
func (h *Handler) UpdateAuthorHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.AuthorInput
	if err := httpresponse.DecodeJSON(r, &input); err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}
	author, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), input)
	h.respond(w, r, author, err, http.StatusOK)
}

// DeleteAuthorHandler lida com a requisição DELETE /api/authors/{id}.
// @Summary Remove um autor e todos os seus livros
// @Tags authors
// @Security BearerAuth
// @Param id path string true "ID do autor (UUID)"
// @Success 204
// @Failure 403 {object} domain.ErrorResponse "Apenas Admin"
// @Failure 404 {object} domain.ErrorResponse "Autor não encontrado"
// @Router /authors/{id} [delete]
func (h *Handler) DeleteAuthorHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, nil, err, http.StatusNoContent)
}
