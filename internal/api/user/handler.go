package user

import (
	"context"
	"net/http"

	"golibrary/internal/domain"
	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/httpresponse"
	"golibrary/internal/pkg/logger"
	"golibrary/internal/pkg/middleware"
)

// UserService define o contrato para registro, login e ciclo de vida da sessão.
type UserService interface {
	Register(ctx context.Context, input domain.RegisterInput, callerRole string) (domain.UserResponse, error)
	Login(ctx context.Context, input domain.LoginInput) (domain.AuthResponse, error)
	RefreshSession(ctx context.Context, input domain.RefreshInput) (domain.AuthResponse, error)
	RevokeSession(ctx context.Context, userID string, input domain.RevokeInput) error
}

// Handler agrupa os handlers de /api/auth.
type Handler struct {
	Service UserService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// RegisterHandler lida com a requisição POST /api/auth/register.
// @Summary Registra um novo usuário
// @Description Cria o usuário com a role informada. A senha é guardada como hash HMAC-SHA512 com salt próprio.
// @Description A role Admin exige o access token de um Admin.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registration body domain.RegisterInput true "Username, senha e role"
// @Success 201 {object} domain.UserResponse "Usuário criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido, username em uso ou role inexistente"
// @Failure 401 {object} domain.ErrorResponse "Token enviado é inválido"
// @Failure 403 {object} domain.ErrorResponse "Role Admin pedida sem token de Admin"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /auth/register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.RegisterInput
	if err := httpresponse.DecodeJSON(r, &input); err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}

	// Sem token o registro é anônimo.
	claims, _ := middleware.GetUserClaimsFromContext(r.Context())

	user, err := h.Service.Register(r.Context(), input, claims.Role)
	if err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}
	httpresponse.WriteJSON(w, http.StatusCreated, user)
}

// AuthenticateHandler lida com a requisição POST /api/auth/authenticate.
// @Summary Autentica um usuário
// @Description Verifica username/senha e emite um access token JWT e um refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body domain.LoginInput true "Credenciais do usuário"
// @Success 200 {object} domain.AuthResponse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /auth/authenticate [post]
func (h *Handler) AuthenticateHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.LoginInput
	if err := httpresponse.DecodeJSON(r, &input); err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}

	resp, err := h.Service.Login(r.Context(), input)
	if err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}
	httpresponse.WriteJSON(w, http.StatusOK, resp)
}

// RefreshTokenHandler lida com a requisição POST /api/auth/refresh-token.
// @Summary Renova a sessão
// @Description Troca um refresh token válido por um novo par de tokens. O refresh token anterior deixa de valer.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body domain.RefreshInput true "ID do usuário e refresh token"
// @Success 200 {object} domain.AuthResponse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Refresh token inválido ou expirado"
// @Router /auth/refresh-token [post]
func (h *Handler) RefreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.RefreshInput
	if err := httpresponse.DecodeJSON(r, &input); err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}

	resp, err := h.Service.RefreshSession(r.Context(), input)
	if err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}
	httpresponse.WriteJSON(w, http.StatusOK, resp)
}

// RevokeTokenHandler lida com a requisição POST /api/auth/revoke-token.
// @Summary Revoga o refresh token
// @Description Encerra a sessão do usuário autenticado. O token precisa pertencer a ele.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param revoke body domain.RevokeInput true "Refresh token a revogar"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Não autenticado ou token de outro usuário"
// @Router /auth/revoke-token [post]
func (h *Handler) RevokeTokenHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok {
		httpresponse.WriteError(w, r, h.Logger, apperror.NewUnauthorizedError("Autorização necessária."))
		return
	}

	var input domain.RevokeInput
	if err := httpresponse.DecodeJSON(r, &input); err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}

	if err := h.Service.RevokeSession(r.Context(), claims.UserID, input); err != nil {
		httpresponse.WriteError(w, r, h.Logger, err)
		return
	}
	h.Logger.Info("Refresh token revogado.", map[string]interface{}{"user_id": claims.UserID})
	httpresponse.WriteJSON(w, http.StatusOK, domain.MessageResponse{Message: "Token revogado."})
}
