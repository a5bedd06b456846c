package authorservice

import (
	"context"

	"github.com/google/uuid"

	"golibrary/internal/domain"
	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/logger"
)

// AuthorRepository define o contrato que o Serviço de Autores espera da camada de Persistência.
// Delete remove também os livros do autor e devolve quantos foram removidos.
type AuthorRepository interface {
	GetAll(ctx context.Context) ([]domain.Author, error)
	GetByID(ctx context.Context, id string) (domain.Author, error)
	Create(ctx context.Context, author domain.Author) (domain.Author, error)
	Update(ctx context.Context, author domain.Author) (domain.Author, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// BookLister lista os livros de um autor.
type BookLister interface {
	GetByAuthor(ctx context.Context, authorID string) ([]domain.Book, error)
}

// InputValidator valida os payloads de entrada.
type InputValidator interface {
	Check(input interface{}, msg string) error
}

// Service implementa as regras de negócio de autores.
type Service struct {
	repo      AuthorRepository
	books     BookLister
	validator InputValidator
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Autores.
func NewService(repo AuthorRepository, books BookLister, validator InputValidator, logger logger.Logger) *Service {
	return &Service{repo: repo, books: books, validator: validator, logger: logger}
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Author, error) {
	if err := validateID(id); err != nil {
		return domain.Author{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// GetBooks lista os livros do autor; autor inexistente é NotFound.
func (s *Service) GetBooks(ctx context.Context, id string) ([]domain.Book, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.books.GetByAuthor(ctx, id)
}

func (s *Service) Create(ctx context.Context, input domain.AuthorInput) (domain.Author, error) {
	if err := s.validator.Check(input, "dados do autor inválidos"); err != nil {
		return domain.Author{}, err
	}
	return s.repo.Create(ctx, domain.Author{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
		Country:     input.Country,
	})
}

func (s *Service) Update(ctx context.Context, id string, input domain.AuthorInput) (domain.Author, error) {
	if err := validateID(id); err != nil {
		return domain.Author{}, err
	}
	if err := s.validator.Check(input, "dados do autor inválidos"); err != nil {
		return domain.Author{}, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Author{}, err
	}
	existing.FirstName = input.FirstName
	existing.LastName = input.LastName
	existing.DateOfBirth = input.DateOfBirth
	existing.Country = input.Country

	return s.repo.Update(ctx, existing)
}

// Delete remove o autor e todos os seus livros.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	booksDeleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.logger.Info("Autor removido junto com seus livros.", map[string]interface{}{"id": id, "books_deleted": booksDeleted})
	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do autor deve ser um UUID válido.",
			apperror.FieldError{Field: "id", Message: "id deve ser um UUID válido"})
	}
	return nil
}
