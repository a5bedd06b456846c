package middleware

import (
	"context"
	"net/http"
	"strings"

	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/httpresponse"
	"golibrary/internal/pkg/logger"
	"golibrary/internal/pkg/token"
)

// ContextKey é o tipo das chaves que este pacote grava no contexto.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
)

// UserClaims representa os dados do usuário extraídos do access token.
type UserClaims struct {
	UserID string
	Role   string
}

// TokenValidator define o contrato de validação necessário para o middleware.
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware valida o Bearer token e anexa as claims (UserID e Role) ao contexto.
func NewAuthMiddleware(validator TokenValidator, log logger.Logger) func(http.Handler) http.Handler {
	return bearerAuth(validator, log, false)
}

// NewOptionalAuthMiddleware deixa passar requisições sem Authorization, sem claims.
// Um header presente é validado como em NewAuthMiddleware.
func NewOptionalAuthMiddleware(validator TokenValidator, log logger.Logger) func(http.Handler) http.Handler {
	return bearerAuth(validator, log, true)
}

func bearerAuth(validator TokenValidator, log logger.Logger, optional bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if optional && authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				httpresponse.WriteError(w, r, log, apperror.NewUnauthorizedError("Token de autorização ausente ou malformado."))
				return
			}

			claims, err := validator.ValidateAccessToken(tokenString)
			if err != nil {
				log.Debug("Access token rejeitado.", map[string]interface{}{"reason": err.Error()})
				httpresponse.WriteError(w, r, log, apperror.NewUnauthorizedError("Token inválido ou expirado."))
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, UserClaims{
				UserID: claims.UserID,
				Role:   claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserClaimsFromContext extrai as claims anexadas por NewAuthMiddleware.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

// PermissionMiddleware só deixa passar usuários cuja role está em requiredRoles.
// Deve ser montado depois de NewAuthMiddleware.
func PermissionMiddleware(log logger.Logger, requiredRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetUserClaimsFromContext(r.Context())
			if !ok {
				httpresponse.WriteError(w, r, log, apperror.NewUnauthorizedError("Autorização necessária. Token não processado."))
				return
			}

			for _, role := range requiredRoles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.Warn("Acesso negado por role.", map[string]interface{}{"user_id": claims.UserID, "role": claims.Role, "path": r.URL.Path})
			httpresponse.WriteError(w, r, log, apperror.NewForbiddenError("Você não tem a permissão necessária."))
		})
	}
}
