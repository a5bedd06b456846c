package router_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golibrary/internal/api/author"
	"golibrary/internal/api/book"
	"golibrary/internal/api/router"
	"golibrary/internal/api/user"
	"golibrary/internal/domain"
	"golibrary/internal/pkg/cache"
	"golibrary/internal/pkg/logger"
	"golibrary/internal/pkg/metrics"
	"golibrary/internal/pkg/token"
)

const secret = "uma-chave-secreta-de-pelo-menos-32-bytes"

// stubBookService só implementa o que os testes de roteamento exercitam.
type stubBookService struct {
	book.BookService
	deleted []string
}

func (s *stubBookService) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

// stubUserService registra a role de quem chamou o registro.
type stubUserService struct {
	user.UserService
	callerRoles []string
}

func (s *stubUserService) Register(_ context.Context, input domain.RegisterInput, callerRole string) (domain.UserResponse, error) {
	s.callerRoles = append(s.callerRoles, callerRole)
	return domain.UserResponse{ID: "u-9", Username: input.Username, Role: input.Role}, nil
}

type fixture struct {
	handler http.Handler
	issuer  *token.Issuer
	books   *stubBookService
	users   *stubUserService
}

func newFixture(t *testing.T, limit int) fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := cache.NewRedisClient(context.Background(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	log := logger.NewWithWriter(io.Discard, "debug")
	issuer := token.NewIssuer(secret, "golibrary-test", 15*time.Minute)
	books := &stubBookService{}
	users := &stubUserService{}

	h := router.NewRouter(router.Dependencies{
		BookHandler:          book.NewHandler(books, log),
		AuthorHandler:        author.NewHandler(nil, log),
		UserHandler:          user.NewHandler(users, log),
		TokenValidator:       issuer,
		Cache:                client,
		Metrics:              metrics.New(),
		Logger:               log,
		RateLimitMaxRequests: limit,
		RateLimitPeriod:      time.Minute,
	})
	return fixture{handler: h, issuer: issuer, books: books, users: users}
}

func (f fixture) do(t *testing.T, method, path, role string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if role != "" {
		tok, _, err := f.issuer.GenerateAccessToken("u-1", role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	f := newFixture(t, 10)

	rec := f.do(t, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := newFixture(t, 10)

	for _, path := range []string{"/api/books", "/api/authors", "/api/books/isbn/9780134190440"} {
		assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodGet, path, "").Code, path)
	}
	assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodPost, "/api/auth/revoke-token", "").Code)
}

func TestDeleteRequiresAdmin(t *testing.T) {
	f := newFixture(t, 10)

	assert.Equal(t, http.StatusForbidden, f.do(t, http.MethodDelete, "/api/books/b-1", domain.RoleUser).Code)
	assert.Equal(t, http.StatusForbidden, f.do(t, http.MethodDelete, "/api/authors/a-1", domain.RoleUser).Code)
	assert.Empty(t, f.books.deleted)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/api/books/b-1", domain.RoleAdmin).Code)
	assert.Equal(t, []string{"b-1"}, f.books.deleted)
}

func TestRegisterCarriesCallerRole(t *testing.T) {
	f := newFixture(t, 10)
	register := func(header string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			strings.NewReader(`{"username":"root","password":"s3cret!","role":"Admin"}`))
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)
		return rec.Code
	}

	adminToken, _, err := f.issuer.GenerateAccessToken("u-1", domain.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, register(""))
	assert.Equal(t, http.StatusCreated, register("Bearer "+adminToken))
	assert.Equal(t, http.StatusUnauthorized, register("Bearer forjado"))
	assert.Equal(t, []string{"", domain.RoleAdmin}, f.users.callerRoles)
}

func TestRateLimitAppliesToAPI(t *testing.T) {
	f := newFixture(t, 1)

	first := f.do(t, http.MethodGet, "/api/books", "")
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, http.StatusTooManyRequests, f.do(t, http.MethodGet, "/api/books", "").Code)

	// /ping não conta para o limite.
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/ping", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, 10)
	f.do(t, http.MethodGet, "/ping", "")

	rec := f.do(t, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `golibrary_http_requests_total{method="GET",route="/ping",status="200"} 1`)
}

func TestSwaggerDoc(t *testing.T) {
	f := newFixture(t, 10)

	rec := f.do(t, http.MethodGet, "/swagger/doc.json", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "GoLibrary API")
	assert.Contains(t, rec.Body.String(), "/books/{id}/borrow")
}
