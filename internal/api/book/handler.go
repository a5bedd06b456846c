package book

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"golibrary/internal/domain"
	"golibrary/internal/pkg/httpresponse"
	"golibrary/internal/pkg/logger"
	"golibrary/internal/pkg/middleware"
)

// BookService define o contrato que o Handler espera da camada de Serviço.
type BookService interface {
	GetAll(ctx context.Context) ([]domain.Book, error)
	GetByID(ctx context.Context, id string) (domain.Book, error)
	GetByISBN(ctx context.Context, isbn string) (domain.Book, error)
	Create(ctx context.Context, input domain.BookInput) (domain.Book, error)
	Update(ctx context.Context, id string, input domain.BookInput) (domain.Book, error)
	Delete(ctx context.Context, id string) error
	Borrow(ctx context.Context, id string, input domain.BorrowInput) (domain.Book, error)
	Return(ctx context.Context, id string) (domain.Book, error)
	AddImage(ctx context.Context, id string, input domain.ImageInput) (domain.Book, error)
}

// Handler agrupa todos os métodos de Handler do livro.
type Handler struct {
	Service BookService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc BookService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}
	httpresponse.WriteJSON(w, successStatus, data)
}

// ListBooksHandler lida com a requisição GET /api/books.
// @Summary Lista os livros
// @Tags books
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Book
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Router /books [get]
func (h *Handler) ListBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := h.Service.GetAll(r.Context())
	h.respond(w, r, books, err, http.StatusOK)
}

// GetBookHandler lida com a requisição GET /api/books/{id}.
// @Summary Busca um livro pelo ID
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do livro (UUID)"
// @Success 200 {object} domain.Book
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Livro não encontrado"
// @Router /books/{id} [get]
func (h *Handler) GetBookHandler(w http.ResponseWriter, r *http.Request) {
	book, err := h.Service.GetByID(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, book, err, http.StatusOK)
}

// GetBookByISBNHandler lida com a requisição GET /api/books/isbn/{isbn}.
// @Summary Busca um livro pelo ISBN
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param isbn path string true "ISBN do livro"
// @Success 200 {object} domain.Book
// @Failure 404 {object} domain.ErrorResponse "Livro não encontrado"
// @Router /books/isbn/{isbn} [get]
func (h *Handler) GetBookByISBNHandler(w http.ResponseWriter, r *http.Request) {
	book, err := h.Service.GetByISBN(r.Context(), chi.URLParam(r, "isbn"))
	h.respond(w, r, book, err, http.StatusOK)
}

// CreateBookHandler lida com a requisição POST /api/books.
// @Summary Cadastra um livro
// @Description O ISBN precisa ser único e o autor precisa existir.
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param book body domain.BookInput true "Dados do livro"
// @Success 201 {object} domain.Book
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Autor não encontrado"
// @Failure 409 {object} domain.ErrorResponse "ISBN já cadastrado"
// @Router /books [post]
func (h *Handler) CreateBookHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.BookInput
	if err := httpresponse.DecodeJSON(r, &input); err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}

	if claims, ok := middleware.GetUserClaimsFromContext(r.Context()); ok {
		h.Logger.Info("Criação de livro solicitada.", map[string]interface{}{
			"user_id": claims.UserID,
			"isbn":    input.ISBN,
		})
	}

	book, err := h.Service.Create(r.Context(), input)
	h.respond(w, r, book, err, http.StatusCreated)
}

// UpdateBookHandler lida com a requisição PUT /api/books/{id}.
// @Summary Atualiza um livro
// @Description Estado de empréstimo e imagem são preservados.
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do livro (UUID)"
// @Param book body domain.BookInput true "Dados do livro"
// @Success 200 {object} domain.Book
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Livro ou autor não encontrado"
// @Failure 409 {object} domain.ErrorResponse "ISBN já usado por outro livro"
// @Router /books/{id} [put]
func (h *Handler) UpdateBookHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.BookInput
	if err := httpresponse.DecodeJSON(r, &input); err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}
	book, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), input)
	h.respond(w, r, book, err, http.StatusOK)
}

// DeleteBookHandler lida com a requisição DELETE /api/books/{id}.
// @Summary Remove um livro
// @Tags books
// @Security BearerAuth
// @Param id path string true "ID do livro (UUID)"
// @Success 204
// @Failure 403 {object} domain.ErrorResponse "Apenas Admin"
// @Failure 404 {object} domain.ErrorResponse "Livro não encontrado"
// @Router /books/{id} [delete]
func (h *Handler) DeleteBookHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, nil, err, http.StatusNoContent)
}

// BorrowBookHandler lida com a requisição POST /api/books/{id}/borrow.
// @Summary Empresta um livro
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do livro (UUID)"
// @Param borrow body domain.BorrowInput true "Data de devolução"
// @Success 200 {object} domain.Book
// @Failure 400 {object} domain.ErrorResponse "Data de devolução inválida"
// @Failure 404 {object} domain.ErrorResponse "Livro não encontrado"
// @Router /books/{id}/borrow [post]
func (h *Handler) BorrowBookHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.BorrowInput
	if err := httpresponse.DecodeJSON(r, &input); err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}
	book, err := h.Service.Borrow(r.Context(), chi.URLParam(r, "id"), input)
	h.respond(w, r, book, err, http.StatusOK)
}

// ReturnBookHandler lida com a requisição POST /api/books/{id}/return.
// @Summary Devolve um livro
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do livro (UUID)"
// @Success 200 {object} domain.Book
// @Failure 404 {object} domain.ErrorResponse "Livro não encontrado"
// @Router /books/{id}/return [post]
func (h *Handler) ReturnBookHandler(w http.ResponseWriter, r *http.Request) {
	book, err := h.Service.Return(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, book, err, http.StatusOK)
}

// AddImageHandler lida com a requisição POST /api/books/{id}/image.
// @Summary Associa uma imagem ao livro
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do livro (UUID)"
// @Param image body domain.ImageInput true "URL da imagem"
// @Success 200 {object} domain.Book
// @Failure 400 {object} domain.ErrorResponse "URL inválida"
// @Failure 404 {object} domain.ErrorResponse "Livro não encontrado"
// @Router /books/{id}/image [post]
func (h *Handler) AddImageHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.ImageInput
	if err := httpresponse.DecodeJSON(r, &input); err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}
	book, err := h.Service.AddImage(r.Context(), chi.URLParam(r, "id"), input)
	h.respond(w, r, book, err, http.StatusOK)
}
