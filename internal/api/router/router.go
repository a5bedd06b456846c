package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "golibrary/docs" // registra o documento OpenAPI servido em /swagger/doc.json
	"golibrary/internal/api/author"
	"golibrary/internal/api/book"
	"golibrary/internal/api/user"
	"golibrary/internal/domain"
	"golibrary/internal/pkg/cache"
	"golibrary/internal/pkg/logger"
	"golibrary/internal/pkg/metrics"
	"golibrary/internal/pkg/middleware"
)

// Dependencies reúne tudo que o roteador precisa, já inicializado pelo main.
type Dependencies struct {
	BookHandler    *book.Handler
	AuthorHandler  *author.Handler
	UserHandler    *user.Handler
	TokenValidator middleware.TokenValidator
	Cache          cache.Client
	Metrics        *metrics.Metrics
	Logger         logger.Logger

	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(d Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.Metrics(d.Metrics))
	r.Use(chimiddleware.Recoverer)

	// Health check e observabilidade ficam fora do rate limit.
	r.Get("/ping", PingHandler)
	r.Handle("/metrics", d.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	auth := middleware.NewAuthMiddleware(d.TokenValidator, d.Logger)
	optionalAuth := middleware.NewOptionalAuthMiddleware(d.TokenValidator, d.Logger)
	adminOnly := middleware.PermissionMiddleware(d.Logger, domain.RoleAdmin)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimiter(d.Cache, d.RateLimitMaxRequests, d.RateLimitPeriod, d.Logger))

		r.Route("/auth", func(r chi.Router) {
			r.With(optionalAuth).Post("/register", d.UserHandler.RegisterHandler)
			r.Post("/authenticate", d.UserHandler.AuthenticateHandler)
			r.Post("/refresh-token", d.UserHandler.RefreshTokenHandler)
			r.With(auth).Post("/revoke-token", d.UserHandler.RevokeTokenHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Route("/books", func(r chi.Router) {
				r.Get("/", d.BookHandler.ListBooksHandler)
				r.Post("/", d.BookHandler.CreateBookHandler)
				r.Get("/isbn/{isbn}", d.BookHandler.GetBookByISBNHandler)
				r.Get("/{id}", d.BookHandler.GetBookHandler)
				r.Put("/{id}", d.BookHandler.UpdateBookHandler)
				r.With(adminOnly).Delete("/{id}", d.BookHandler.DeleteBookHandler)
				r.Post("/{id}/borrow", d.BookHandler.BorrowBookHandler)
				r.Post("/{id}/return", d.BookHandler.ReturnBookHandler)
				r.Post("/{id}/image", d.BookHandler.AddImageHandler)
			})

			r.Route("/authors", func(r chi.Router) {
				r.Get("/", d.AuthorHandler.ListAuthorsHandler)
				r.Post("/", d.AuthorHandler.CreateAuthorHandler)
				r.Get("/{id}", d.AuthorHandler.GetAuthorHandler)
				r.Get("/{id}/books", d.AuthorHandler.GetAuthorBooksHandler)
				r.Put("/{id}", d.AuthorHandler.UpdateAuthorHandler)
				r.With(adminOnly).Delete("/{id}", d.AuthorHandler.DeleteAuthorHandler)
			})
		})
	})

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
