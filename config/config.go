package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// minSecretLength é o tamanho mínimo aceito para a chave de assinatura dos JWTs.
const minSecretLength = 32

// Config armazena todas as configurações do GoLibrary.
// É construída uma única vez no main e passada por referência aos construtores.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration

	// Redis (contadores do rate limit)
	RedisAddr string

	// Segurança (JWT)
	JWTSecretKey    string
	JWTIssuer       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env (se existir) já deve ter sido carregado pelo godotenv antes da chamada.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_TIMEOUT", "5s")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("JWT_ISSUER", "golibrary-api")
	v.SetDefault("ACCESS_TOKEN_TTL", "15m")
	v.SetDefault("REFRESH_TOKEN_TTL", "168h")
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_PERIOD", "1m")

	cfg := &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),

		DatabaseURL: v.GetString("DATABASE_URL"),
		DBTimeout:   v.GetDuration("DB_TIMEOUT"),

		RedisAddr: v.GetString("REDIS_ADDR"),

		JWTSecretKey:    v.GetString("JWT_SECRET_KEY"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		AccessTokenTTL:  v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL: v.GetDuration("REFRESH_TOKEN_TTL"),

		RateLimitMaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      v.GetDuration("RATE_LIMIT_PERIOD"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate garante que a aplicação não inicie com configurações essenciais ausentes.
func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("a variável de ambiente DATABASE_URL deve ser definida")
	}
	if len(c.JWTSecretKey) < minSecretLength {
		return fmt.Errorf("a variável de ambiente JWT_SECRET_KEY deve ter pelo menos %d caracteres", minSecretLength)
	}
	if c.DBTimeout <= 0 || c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 || c.RateLimitPeriod <= 0 {
		return fmt.Errorf("durações de configuração devem ser positivas")
	}
	if c.RateLimitMaxRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS deve ser positivo")
	}
	return nil
}

// LoadDatabaseURL lê apenas a DATABASE_URL. Usado pelo comando de migração,
// que não precisa das demais configurações.
func LoadDatabaseURL() (string, error) {
	v := viper.New()
	v.AutomaticEnv()

	url := v.GetString("DATABASE_URL")
	if url == "" {
		return "", fmt.Errorf("a variável de ambiente DATABASE_URL deve ser definida")
	}
	return url, nil
}
