package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"golibrary/config"
	"golibrary/internal/pkg/cache"
	"golibrary/internal/pkg/database"
	"golibrary/internal/pkg/hasher"
	"golibrary/internal/pkg/logger"
	"golibrary/internal/pkg/metrics"
	"golibrary/internal/pkg/token"
	"golibrary/internal/pkg/validation"

	"golibrary/internal/api/author"
	"golibrary/internal/api/book"
	"golibrary/internal/api/router"
	"golibrary/internal/api/user"
	"golibrary/internal/repository/authorrepo"
	"golibrary/internal/repository/bookrepo"
	"golibrary/internal/repository/userrepo"
	"golibrary/internal/service/authorservice"
	"golibrary/internal/service/bookservice"
	"golibrary/internal/service/tokenservice"
	"golibrary/internal/service/userservice"
)

// @title GoLibrary API
// @version 1.0
// @description API de gerenciamento de biblioteca: livros, autores e autenticação JWT.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// O .env é opcional: em Docker as variáveis já vêm do ambiente.
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	log := logger.NewLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatal("Configuração inválida.", err)
	}
	log = logger.NewLogger(cfg.LogLevel)
	if envErr != nil {
		log.Warn("Arquivo .env não encontrado. Usando apenas as variáveis do ambiente.", nil)
	}
	log.Info("Inicializando serviço GoLibrary...", map[string]interface{}{"env": cfg.Environment})

	// 1. Infraestrutura

	sqlDB, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer sqlDB.Close()

	db, err := database.NewGormDB(sqlDB, cfg.LogLevel)
	if err != nil {
		log.Fatal("Falha ao inicializar o gorm.", err)
	}
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	cacheClient, err := cache.NewRedisClient(context.Background(), cfg.RedisAddr)
	if err != nil {
		log.Fatal("Falha ao conectar ao Redis.", err)
	}
	defer cacheClient.Close()
	log.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})

	// 2. Injeção de dependências: Repository -> Service -> Handler

	bookRepo := bookrepo.NewBookRepository(db, cfg.DBTimeout, log)
	authorRepo := authorrepo.NewAuthorRepository(db, cfg.DBTimeout, log)
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)
	log.Debug("Repositórios inicializados.", nil)

	validator := validation.New()
	issuer := token.NewIssuer(cfg.JWTSecretKey, cfg.JWTIssuer, cfg.AccessTokenTTL)

	tokenSvc := tokenservice.NewService(userRepo, issuer, cfg.RefreshTokenTTL, log)
	userSvc := userservice.NewService(userRepo, hasher.New(), tokenSvc, validator, log)
	bookSvc := bookservice.NewService(bookRepo, authorRepo, validator, log)
	authorSvc := authorservice.NewService(authorRepo, bookRepo, validator, log)
	log.Debug("Serviços inicializados.", nil)

	handler := router.NewRouter(router.Dependencies{
		BookHandler:          book.NewHandler(bookSvc, log),
		AuthorHandler:        author.NewHandler(authorSvc, log),
		UserHandler:          user.NewHandler(userSvc, log),
		TokenValidator:       issuer,
		Cache:                cacheClient,
		Metrics:              metrics.New(),
		Logger:               log,
		RateLimitMaxRequests: cfg.RateLimitMaxRequests,
		RateLimitPeriod:      cfg.RateLimitPeriod,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 3. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor GoLibrary ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
