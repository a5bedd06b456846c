package authorrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"golibrary/internal/domain"
	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/logger"
	"golibrary/internal/repository/model"
)

// AuthorRepository implementa as operações de persistência de autores sobre o gorm.
type AuthorRepository struct {
	DB        *gorm.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewAuthorRepository cria e retorna uma nova instância do Repositório de Autores.
func NewAuthorRepository(db *gorm.DB, dbTimeout time.Duration, logger logger.Logger) *AuthorRepository {
	return &AuthorRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// GetAll devolve todos os autores ordenados por sobrenome e nome.
func (r *AuthorRepository) GetAll(ctx context.Context) ([]domain.Author, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []model.AuthorModel
	if err := r.DB.WithContext(ctxTimeout).Order("last_name, first_name").Find(&rows).Error; err != nil {
		r.logger.Error("Falha ao listar autores no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar autores", err)
	}

	authors := make([]domain.Author, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, row.ToDomain())
	}
	return authors, nil
}

// GetByID busca um autor pelo ID.
func (r *AuthorRepository) GetByID(ctx context.Context, id string) (domain.Author, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var row model.AuthorModel
	err := r.DB.WithContext(ctxTimeout).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Author{}, apperror.NewNotFoundError(fmt.Sprintf("Autor com ID %s não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar autor no DB.", err)
		return domain.Author{}, apperror.NewDBError("Falha ao buscar autor", err)
	}
	return row.ToDomain(), nil
}

// Create insere um novo autor.
func (r *AuthorRepository) Create(ctx context.Context, author domain.Author) (domain.Author, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if author.ID == "" {
		author.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	author.CreatedAt = now
	author.UpdatedAt = now

	row := model.AuthorFromDomain(author)
	if err := r.DB.WithContext(ctxTimeout).Create(&row).Error; err != nil {
		r.logger.Error("Falha ao inserir autor no DB.", err)
		return domain.Author{}, apperror.NewDBError("Falha ao criar autor", err)
	}

	r.logger.Info("Autor criado com sucesso.", map[string]interface{}{"id": row.ID})
	return row.ToDomain(), nil
}

// Update grava os dados biográficos do autor.
func (r *AuthorRepository) Update(ctx context.Context, author domain.Author) (domain.Author, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	author.UpdatedAt = time.Now().UTC()
	row := model.AuthorFromDomain(author)

	result := r.DB.WithContext(ctxTimeout).
		Model(&model.AuthorModel{}).
		Where("id = ?", author.ID).
		Select("first_name", "last_name", "date_of_birth", "country", "updated_at").
		Updates(&row)
	if result.Error != nil {
		r.logger.Error("Falha ao atualizar autor no DB.", result.Error)
		return domain.Author{}, apperror.NewDBError("Falha ao atualizar autor", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.Author{}, apperror.NewNotFoundError(fmt.Sprintf("Autor com ID %s não encontrado para atualização.", author.ID))
	}

	return r.GetByID(ctx, author.ID)
}

// Delete remove o autor e, na mesma transação, todos os livros dele.
// A FK books.author_id não tem ON DELETE CASCADE: a remoção dos livros é feita aqui.
// Devolve a quantidade de livros removidos.
func (r *AuthorRepository) Delete(ctx context.Context, id string) (int64, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var booksDeleted int64
	err := r.DB.WithContext(ctxTimeout).Transaction(func(tx *gorm.DB) error {
		books := tx.Where("author_id = ?", id).Delete(&model.BookModel{})
		if books.Error != nil {
			return books.Error
		}
		booksDeleted = books.RowsAffected

		result := tx.Where("id = ?", id).Delete(&model.AuthorModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperror.NewNotFoundError(fmt.Sprintf("Autor com ID %s não encontrado para exclusão.", id))
		}
		return nil
	})
	if err != nil {
		if apperror.IsNotFound(err) {
			return 0, err
		}
		r.logger.Error("Falha ao deletar autor no DB.", err)
		return 0, apperror.NewDBError("Falha ao deletar autor", err)
	}

	r.logger.Info("Autor deletado com sucesso.", map[string]interface{}{"id": id, "books_deleted": booksDeleted})
	return booksDeleted, nil
}
