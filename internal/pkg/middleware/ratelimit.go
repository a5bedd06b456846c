package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/cache"
	"golibrary/internal/pkg/httpresponse"
	"golibrary/internal/pkg/logger"
)

// RateLimiter aplica uma janela fixa por IP: o primeiro hit da janela cria o contador com TTL.
// Se o Redis falhar a requisição segue sem limite. Um contador bloqueado sem TTL recebe a
// janela de novo; se isso também falhar, a requisição segue.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rate-limit:" + clientIP(r)
			ctx := r.Context()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Error("Falha ao consultar o rate limit no Redis.", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := client.Expire(ctx, key, window); err != nil {
					log.Error("Falha ao definir a janela do rate limit.", err)
				}
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count <= int64(limit) {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter, ok := windowLeft(ctx, client, key, window, log)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			httpresponse.WriteError(w, r, log, apperror.NewRateLimitError("tente novamente mais tarde."))
		})
	}
}

// noExpiry é a resposta do TTL para uma chave sem tempo de vida.
const noExpiry = time.Duration(-1)

// windowLeft devolve quanto falta para a janela da chave expirar.
// ok é false quando a chave ficou sem TTL e não foi possível redefini-lo.
func windowLeft(ctx context.Context, client cache.Client, key string, window time.Duration, log logger.Logger) (time.Duration, bool) {
	ttl, err := client.TTL(ctx, key)
	if err != nil {
		log.Error("Falha ao consultar o TTL do rate limit.", err)
		return 0, false
	}
	switch {
	case ttl >= 0:
		return ttl, true
	case ttl != noExpiry:
		return 0, false
	}

	// O Expire do primeiro hit falhou.
	log.Warn("Contador de rate limit sem janela; redefinindo.", map[string]interface{}{"key": key})
	if err := client.Expire(ctx, key, window); err != nil {
		log.Error("Falha ao redefinir a janela do rate limit.", err)
		return 0, false
	}
	return window, true
}

// clientIP aceita RemoteAddr com ou sem porta (chi RealIP grava apenas o IP).
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
