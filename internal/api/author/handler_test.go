package author_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"golibrary/internal/api/author"
	"golibrary/internal/domain"
	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/logger"
)

// MockAuthorService é uma implementação mock da interface AuthorService
type MockAuthorService struct {
	mock.Mock
}

func (m *MockAuthorService) GetAll(ctx context.Context) ([]domain.Author, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Author), args.Error(1)
}

func (m *MockAuthorService) GetByID(ctx context.Context, id string) (domain.Author, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Author), args.Error(1)
}

func (m *MockAuthorService) GetBooks(ctx context.Context, id string) ([]domain.Book, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]domain.Book), args.Error(1)
}

func (m *MockAuthorService) Create(ctx context.Context, input domain.AuthorInput) (domain.Author, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Author), args.Error(1)
}

func (m *MockAuthorService) Update(ctx context.Context, id string, input domain.AuthorInput) (domain.Author, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Author), args.Error(1)
}

func (m *MockAuthorService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newRouter(svc *MockAuthorService) http.Handler {
	h := author.NewHandler(svc, logger.NewWithWriter(io.Discard, "debug"))
	r := chi.NewRouter()
	r.Get("/api/authors", h.ListAuthorsHandler)
	r.Post("/api/authors", h.CreateAuthorHandler)
	r.Get("/api/authors/{id}", h.GetAuthorHandler)
	r.Get("/api/authors/{id}/books", h.GetAuthorBooksHandler)
	r.Put("/api/authors/{id}", h.UpdateAuthorHandler)
	r.Delete("/api/authors/{id}", h.DeleteAuthorHandler)
	return r
}

func TestCreateAuthorHandler(t *testing.T) {
	svc := new(MockAuthorService)
	expected := domain.AuthorInput{
		FirstName:   "Clarice",
		LastName:    "Lispector",
		DateOfBirth: time.Date(1920, 12, 10, 0, 0, 0, 0, time.UTC),
		Country:     "Brasil",
	}
	svc.On("Create", mock.Anything, expected).Return(domain.Author{ID: "a-1"}, nil)

	rec := httptest.NewRecorder()
	body := `{"first_name":"Clarice","last_name":"Lispector","date_of_birth":"1920-12-10T00:00:00Z","country":"Brasil"}`
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/authors", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestGetAuthorBooksHandler_UnknownAuthor(t *testing.T) {
	svc := new(MockAuthorService)
	svc.On("GetBooks", mock.Anything, "a-9").Return([]domain.Book(nil), apperror.NewNotFoundError("Autor não encontrado."))

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/authors/a-9/books", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAuthorHandler(t *testing.T) {
	svc := new(MockAuthorService)
	svc.On("Delete", mock.Anything, "a-1").Return(nil)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/authors/a-1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}

func TestUpdateAuthorHandler_MalformedJSON(t *testing.T) {
	svc := new(MockAuthorService)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/authors/a-1", strings.NewReader("[")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
