package userservice

import (
	"context"
	"errors"
	"fmt"

	"golibrary/internal/domain"
	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/logger"
)

// UserRepository define o contrato que o Serviço de Usuários espera da camada de Persistência.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)
}

// PasswordHasher gera e verifica hashes de senha (internal/pkg/hasher).
type PasswordHasher interface {
	Hash(password string) (hash, salt []byte, err error)
	Verify(password string, hash, salt []byte) bool
}

// SessionService emite e controla as sessões (internal/service/tokenservice).
type SessionService interface {
	Authenticate(ctx context.Context, user domain.User) (domain.AuthResponse, error)
	ValidateRefreshToken(ctx context.Context, refreshToken, userID string) (bool, error)
	RevokeRefreshToken(ctx context.Context, refreshToken string) error
}

// InputValidator valida os payloads de entrada (internal/pkg/validation).
type InputValidator interface {
	Check(input interface{}, msg string) error
}

// UserService define o serviço de lógica de negócio para registro e autenticação.
type UserService struct {
	repo      UserRepository
	hasher    PasswordHasher
	sessions  SessionService
	validator InputValidator
	logger    logger.Logger
}

// NewService cria uma nova instância do UserService.
func NewService(repo UserRepository, hasher PasswordHasher, sessions SessionService, validator InputValidator, logger logger.Logger) *UserService {
	return &UserService{
		repo:      repo,
		hasher:    hasher,
		sessions:  sessions,
		validator: validator,
		logger:    logger,
	}
}

// Register registra um novo usuário com a role informada.
// callerRole é a role de quem faz a requisição ("" se anônimo); só um Admin registra outro Admin.
// Username já usado e role inexistente são violações de regra de negócio (DomainError).
func (s *UserService) Register(ctx context.Context, input domain.RegisterInput, callerRole string) (domain.UserResponse, error) {
	if err := s.validator.Check(input, "dados de registro inválidos"); err != nil {
		return domain.UserResponse{}, err
	}
	if input.Role == domain.RoleAdmin && callerRole != domain.RoleAdmin {
		s.logger.Warn("Registro de Admin recusado.", map[string]interface{}{"username": input.Username, "caller_role": callerRole})
		return domain.UserResponse{}, apperror.NewForbiddenError("Apenas administradores podem registrar usuários Admin.")
	}

	_, err := s.repo.GetByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return domain.UserResponse{}, apperror.NewDomainError(fmt.Sprintf("O username %s já está em uso.", input.Username))
	case !apperror.IsNotFound(err):
		return domain.UserResponse{}, err
	}

	role, err := s.repo.GetRoleByName(ctx, input.Role)
	if apperror.IsNotFound(err) {
		return domain.UserResponse{}, apperror.NewDomainError(fmt.Sprintf("A role %s não existe.", input.Role))
	}
	if err != nil {
		return domain.UserResponse{}, err
	}

	hash, salt, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.UserResponse{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	user, err := s.repo.Create(ctx, domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		PasswordSalt: salt,
		Roles:        []domain.Role{role},
	})
	if err != nil {
		// Dois registros simultâneos com o mesmo username: a constraint do banco decide.
		var conflict *apperror.ConflictError
		if errors.As(err, &conflict) {
			return domain.UserResponse{}, apperror.NewDomainError(fmt.Sprintf("O username %s já está em uso.", input.Username))
		}
		return domain.UserResponse{}, err
	}

	s.logger.Info("Usuário registrado.", map[string]interface{}{"user_id": user.ID, "role": role.Name})
	return domain.UserResponse{ID: user.ID, Username: user.Username, Role: role.Name}, nil
}

// Login verifica as credenciais e abre uma sessão.
// Usuário inexistente e senha errada produzem o mesmo erro.
func (s *UserService) Login(ctx context.Context, input domain.LoginInput) (domain.AuthResponse, error) {
	if err := s.validator.Check(input, "credenciais incompletas"); err != nil {
		return domain.AuthResponse{}, err
	}

	user, err := s.repo.GetByUsername(ctx, input.Username)
	if apperror.IsNotFound(err) {
		s.logger.Debug("Login com usuário desconhecido.", map[string]interface{}{"username": input.Username})
		return domain.AuthResponse{}, apperror.NewUnauthorizedError("Usuário ou senha incorretos.")
	}
	if err != nil {
		return domain.AuthResponse{}, err
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash, user.PasswordSalt) {
		s.logger.Warn("Senha incorreta.", map[string]interface{}{"user_id": user.ID})
		return domain.AuthResponse{}, apperror.NewUnauthorizedError("Usuário ou senha incorretos.")
	}

	return s.sessions.Authenticate(ctx, user)
}

// RefreshSession troca um refresh token válido por um novo par de tokens.
// O token anterior é sobrescrito pelo novo.
func (s *UserService) RefreshSession(ctx context.Context, input domain.RefreshInput) (domain.AuthResponse, error) {
	if err := s.validator.Check(input, "dados de renovação inválidos"); err != nil {
		return domain.AuthResponse{}, err
	}

	ok, err := s.sessions.ValidateRefreshToken(ctx, input.RefreshToken, input.UserID)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if !ok {
		return domain.AuthResponse{}, apperror.NewUnauthorizedError("Refresh token inválido ou expirado.")
	}

	user, err := s.repo.GetByID(ctx, input.UserID)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	return s.sessions.Authenticate(ctx, user)
}

// RevokeSession revoga o refresh token do usuário autenticado.
// O token precisa pertencer ao próprio usuário e estar válido.
func (s *UserService) RevokeSession(ctx context.Context, userID string, input domain.RevokeInput) error {
	if err := s.validator.Check(input, "refresh token ausente"); err != nil {
		return err
	}

	ok, err := s.sessions.ValidateRefreshToken(ctx, input.RefreshToken, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewUnauthorizedError("Refresh token inválido ou expirado.")
	}
	return s.sessions.RevokeRefreshToken(ctx, input.RefreshToken)
}
