package userrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"golibrary/internal/domain"
	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/database"
	"golibrary/internal/pkg/logger"
	"golibrary/internal/repository/model"
)

// UserRepository persiste usuários, suas roles (user_roles) e o refresh token ativo.
type UserRepository struct {
	DB        *gorm.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUserRepository cria uma nova instância do UserRepository, injetando o DB.
func NewUserRepository(db *gorm.DB, dbTimeout time.Duration, logger logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Create insere um novo usuário e os vínculos em user_roles.
// As roles precisam existir; elas não são criadas aqui.
func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	r.logger.Debug("Iniciando Create de usuário no repositório.", map[string]interface{}{"username": user.Username})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	row := model.UserFromDomain(user)
	if err := r.DB.WithContext(ctxTimeout).Omit("Roles.*").Create(&row).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return domain.User{}, apperror.NewConflictError(fmt.Sprintf("O username %s já está em uso.", user.Username))
		}
		r.logger.Error("Falha ao inserir usuário no DB.", err)
		return domain.User{}, apperror.NewDBError("Falha ao criar usuário", err)
	}

	r.logger.Info("Usuário criado com sucesso.", map[string]interface{}{"user_id": row.ID})
	return row.ToDomain(), nil
}

// GetByID busca um usuário (com roles) pelo ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	return r.first(ctx, "id = ?", id, fmt.Sprintf("Usuário com ID %s não encontrado.", id))
}

// GetByUsername busca um usuário (com roles) pelo username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.first(ctx, "username = ?", username, fmt.Sprintf("Usuário %s não encontrado.", username))
}

// GetByRefreshToken busca o usuário dono do refresh token.
func (r *UserRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (domain.User, error) {
	return r.first(ctx, "refresh_token = ?", refreshToken, "Refresh token não encontrado.")
}

// GetRoleByName busca uma role pelo nome.
func (r *UserRepository) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var row model.RoleModel
	err := r.DB.WithContext(ctxTimeout).Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Role{}, apperror.NewNotFoundError(fmt.Sprintf("Role %s não encontrada.", name))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar role no DB.", err)
		return domain.Role{}, apperror.NewDBError("Falha ao buscar role", err)
	}
	return row.ToDomain(), nil
}

// SaveRefreshToken grava o refresh token do usuário, sobrescrevendo o anterior.
func (r *UserRepository) SaveRefreshToken(ctx context.Context, userID, refreshToken string, created, expires time.Time) error {
	return r.updateToken(ctx, userID, map[string]interface{}{
		"refresh_token": refreshToken,
		"token_created": created,
		"token_expires": expires,
	})
}

// ClearRefreshToken remove o refresh token e os timestamps do usuário.
func (r *UserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	return r.updateToken(ctx, userID, map[string]interface{}{
		"refresh_token": nil,
		"token_created": nil,
		"token_expires": nil,
	})
}

func (r *UserRepository) updateToken(ctx context.Context, userID string, values map[string]interface{}) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	values["updated_at"] = time.Now().UTC()
	result := r.DB.WithContext(ctxTimeout).Model(&model.UserModel{}).Where("id = ?", userID).Updates(values)
	if result.Error != nil {
		r.logger.Error("Falha ao atualizar refresh token no DB.", result.Error)
		return apperror.NewDBError("Falha ao atualizar refresh token", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Usuário com ID %s não encontrado.", userID))
	}
	return nil
}

func (r *UserRepository) first(ctx context.Context, query string, arg interface{}, notFoundMsg string) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var row model.UserModel
	err := r.DB.WithContext(ctxTimeout).
		Preload("Roles", func(db *gorm.DB) *gorm.DB { return db.Order("roles.name") }).
		Where(query, arg).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, apperror.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		r.logger.Error("Falha ao buscar usuário no DB.", err)
		return domain.User{}, apperror.NewDBError("Falha ao buscar usuário", err)
	}
	return row.ToDomain(), nil
}
