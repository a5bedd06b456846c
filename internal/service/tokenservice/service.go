package tokenservice

import (
	"context"
	"crypto/subtle"
	"time"

	"golibrary/internal/domain"
	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/logger"
	"golibrary/internal/pkg/token"
)

// UserTokenRepository define o que o serviço de tokens precisa da camada de Persistência.
type UserTokenRepository interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByRefreshToken(ctx context.Context, refreshToken string) (domain.User, error)
	SaveRefreshToken(ctx context.Context, userID, refreshToken string, created, expires time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
}

// AccessTokenIssuer assina access tokens.
type AccessTokenIssuer interface {
	GenerateAccessToken(userID, role string) (string, time.Time, error)
}

// Service emite o par de tokens de uma sessão e controla o refresh token persistido.
// Cada usuário tem no máximo um refresh token; emitir outro sobrescreve o anterior.
type Service struct {
	repo       UserTokenRepository
	issuer     AccessTokenIssuer
	refreshTTL time.Duration
	logger     logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Tokens.
func NewService(repo UserTokenRepository, issuer AccessTokenIssuer, refreshTTL time.Duration, logger logger.Logger) *Service {
	return &Service{repo: repo, issuer: issuer, refreshTTL: refreshTTL, logger: logger}
}

// Authenticate emite access e refresh token para o usuário e persiste o refresh token.
func (s *Service) Authenticate(ctx context.Context, user domain.User) (domain.AuthResponse, error) {
	role := user.PrimaryRole()

	accessToken, expiresAt, err := s.issuer.GenerateAccessToken(user.ID, role)
	if err != nil {
		s.logger.Error("Falha ao gerar access token.", err)
		return domain.AuthResponse{}, apperror.NewInternalError("Falha ao gerar access token.", err)
	}

	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		s.logger.Error("Falha ao gerar refresh token.", err)
		return domain.AuthResponse{}, apperror.NewInternalError("Falha ao gerar refresh token.", err)
	}

	now := time.Now().UTC()
	if err := s.repo.SaveRefreshToken(ctx, user.ID, refreshToken, now, now.Add(s.refreshTTL)); err != nil {
		return domain.AuthResponse{}, err
	}

	s.logger.Info("Sessão emitida.", map[string]interface{}{"user_id": user.ID})
	return domain.AuthResponse{
		ID:           user.ID,
		Username:     user.Username,
		Role:         role,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateRefreshToken é true somente se o usuário userID possui exatamente esse token
// e a expiração ainda está no futuro.
func (s *Service) ValidateRefreshToken(ctx context.Context, refreshToken, userID string) (bool, error) {
	if refreshToken == "" || userID == "" {
		return false, nil
	}

	user, err := s.repo.GetByID(ctx, userID)
	if apperror.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if user.RefreshToken == "" || subtle.ConstantTimeCompare([]byte(user.RefreshToken), []byte(refreshToken)) != 1 {
		return false, nil
	}
	if user.TokenExpires == nil || !user.TokenExpires.After(time.Now()) {
		s.logger.Debug("Refresh token expirado.", map[string]interface{}{"user_id": userID})
		return false, nil
	}
	return true, nil
}

// RevokeRefreshToken limpa o token do usuário dono. Sem dono, não faz nada.
func (s *Service) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	owner, err := s.repo.GetByRefreshToken(ctx, refreshToken)
	if apperror.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.repo.ClearRefreshToken(ctx, owner.ID); err != nil {
		return err
	}

	s.logger.Info("Refresh token revogado.", map[string]interface{}{"user_id": owner.ID})
	return nil
}
