package bookrepo

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

// BookRepository implementa as operações de persistência de livros sobre o gorm.
type BookRepository struct {
	DB        *gorm.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewBookRepository cria e retorna uma nova instância do Repositório de Livros.
func NewBookRepository(db *gorm.DB, dbTimeout time.Duration, logger logger.Logger) *BookRepository {
	return &BookRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// GetAll devolve todos os livros ordenados por título.
func (r *BookRepository) GetAll(ctx context.Context) ([]domain.Book, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []model.BookModel
	if err := r.DB.WithContext(ctxTimeout).Order("title").Find(&rows).Error; err != nil {
		r.logger.Error("Falha ao listar livros no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar livros", err)
	}
	return toDomain(rows), nil
}

// GetByID busca um livro pelo ID.
func (r *BookRepository) GetByID(ctx context.Context, id string) (domain.Book, error) {
	return r.first(ctx, "id = ?", id, fmt.Sprintf("Livro com ID %s não encontrado.", id))
}

// GetByISBN busca um livro pelo ISBN.
func (r *BookRepository) GetByISBN(ctx context.Context, isbn string) (domain.Book, error) {
	return r.first(ctx, "isbn = ?", isbn, fmt.Sprintf("Livro com ISBN %s não encontrado.", isbn))
}

// GetByAuthor devolve os livros de um autor.
func (r *BookRepository) GetByAuthor(ctx context.Context, authorID string) ([]domain.Book, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []model.BookModel
	err := r.DB.WithContext(ctxTimeout).Where("author_id = ?", authorID).Order("title").Find(&rows).Error
	if err != nil {
		r.logger.Error("Falha ao listar livros do autor no DB.", err)
		return nil, apperror.NewDBError("Falha ao listar livros do autor", err)
	}
	return toDomain(rows), nil
}

// Create insere um novo livro. Um ISBN duplicado detectado pelo banco vira ConflictError.
func (r *BookRepository) Create(ctx context.Context, book domain.Book) (domain.Book, error) {
	r.logger.Debug("Iniciando Create de livro no repositório.", map[string]interface{}{"isbn": book.ISBN})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now

	row := model.BookFromDomain(book)
	if err := r.DB.WithContext(ctxTimeout).Create(&row).Error; err != nil {
		return domain.Book{}, r.writeError("Falha ao criar livro", book.ISBN, err)
	}

	r.logger.Info("Livro criado com sucesso.", map[string]interface{}{"id": row.ID, "isbn": row.ISBN})
	return row.ToDomain(), nil
}

// Update grava todos os campos do livro, inclusive os de empréstimo zerados.
func (r *BookRepository) Update(ctx context.Context, book domain.Book) (domain.Book, error) {
	r.logger.Debug("Iniciando Update de livro no repositório.", map[string]interface{}{"id": book.ID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	book.UpdatedAt = time.Now().UTC()
	row := model.BookFromDomain(book)

	result := r.DB.WithContext(ctxTimeout).
		Model(&model.BookModel{}).
		Where("id = ?", book.ID).
		Select("isbn", "title", "genre", "description", "image_url", "borrowed_date", "due_date", "author_id", "updated_at").
		Updates(&row)
	if result.Error != nil {
		return domain.Book{}, r.writeError("Falha ao atualizar livro", book.ISBN, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.Book{}, apperror.NewNotFoundError(fmt.Sprintf("Livro com ID %s não encontrado para atualização.", book.ID))
	}

	return r.GetByID(ctx, book.ID)
}

// Delete remove um livro pelo ID.
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result := r.DB.WithContext(ctxTimeout).Where("id = ?", id).Delete(&model.BookModel{})
	if result.Error != nil {
		r.logger.Error("Falha ao deletar livro no DB.", result.Error)
		return apperror.NewDBError("Falha ao deletar livro", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Livro com ID %s não encontrado para exclusão.", id))
	}

	r.logger.Info("Livro deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func (r *BookRepository) first(ctx context.Context, query string, arg interface{}, notFoundMsg string) (domain.Book, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var row model.BookModel
	err := r.DB.WithContext(ctxTimeout).Where(query, arg).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Book{}, apperror.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		r.logger.Error("Falha ao buscar livro no DB.", err)
		return domain.Book{}, apperror.NewDBError("Falha ao buscar livro", err)
	}
	return row.ToDomain(), nil
}

func (r *BookRepository) writeError(msg, isbn string, err error) error {
	if database.IsUniqueViolation(err) {
		r.logger.Warn("ISBN duplicado rejeitado pelo banco.", map[string]interface{}{"isbn": isbn})
		return apperror.NewConflictError(fmt.Sprintf("Já existe um livro com o ISBN %s.", isbn))
	}
	r.logger.Error(msg+" no DB.", err)
	return apperror.NewDBError(msg, err)
}

func toDomain(rows []model.BookModel) []domain.Book {
	books := make([]domain.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.ToDomain())
	}
	return books
}
