package bookservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"golibrary/internal/domain"
	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/logger"
)

// BookRepository define o contrato que o Serviço de Livros espera da camada de Persistência.
type BookRepository interface {
	GetAll(ctx context.Context) ([]domain.Book, error)
	GetByID(ctx context.Context, id string) (domain.Book, error)
	GetByISBN(ctx context.Context, isbn string) (domain.Book, error)
	Create(ctx context.Context, book domain.Book) (domain.Book, error)
	Update(ctx context.Context, book domain.Book) (domain.Book, error)
	Delete(ctx context.Context, id string) error
}

// AuthorLookup é usado para confirmar que o autor referenciado existe.
type AuthorLookup interface {
	GetByID(ctx context.Context, id string) (domain.Author, error)
}

// InputValidator valida os payloads de entrada.
type InputValidator interface {
	Check(input interface{}, msg string) error
}

// Service implementa as regras de negócio de livros.
type Service struct {
	repo      BookRepository
	authors   AuthorLookup
	validator InputValidator
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Livros.
func NewService(repo BookRepository, authors AuthorLookup, validator InputValidator, logger logger.Logger) *Service {
	return &Service{repo: repo, authors: authors, validator: validator, logger: logger}
}

// GetAll devolve todos os livros.
func (s *Service) GetAll(ctx context.Context) ([]domain.Book, error) {
	return s.repo.GetAll(ctx)
}

// GetByID busca um livro pelo ID.
func (s *Service) GetByID(ctx context.Context, id string) (domain.Book, error) {
	if err := validateID(id); err != nil {
		return domain.Book{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// GetByISBN busca um livro pelo ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (domain.Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// Create valida, confere a unicidade do ISBN e insere o livro.
func (s *Service) Create(ctx context.Context, input domain.BookInput) (domain.Book, error) {
	s.logger.Debug("Iniciando criação de livro no serviço.", map[string]interface{}{"isbn": input.ISBN})

	if err := s.validator.Check(input, "dados do livro inválidos"); err != nil {
		return domain.Book{}, err
	}
	if err := s.ensureAuthor(ctx, input.AuthorID); err != nil {
		return domain.Book{}, err
	}
	if err := s.ensureISBNFree(ctx, input.ISBN, ""); err != nil {
		return domain.Book{}, err
	}

	return s.repo.Create(ctx, domain.Book{
		ISBN:        input.ISBN,
		Title:       input.Title,
		Genre:       input.Genre,
		Description: input.Description,
		AuthorID:    input.AuthorID,
	})
}

// Update valida, carrega o livro e, se o ISBN mudou, confere que nenhum outro livro o usa.
// Estado de empréstimo e imagem são preservados.
func (s *Service) Update(ctx context.Context, id string, input domain.BookInput) (domain.Book, error) {
	s.logger.Debug("Iniciando atualização de livro no serviço.", map[string]interface{}{"id": id})

	if err := validateID(id); err != nil {
		return domain.Book{}, err
	}
	if err := s.validator.Check(input, "dados do livro inválidos"); err != nil {
		return domain.Book{}, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}
	if input.AuthorID != existing.AuthorID {
		if err := s.ensureAuthor(ctx, input.AuthorID); err != nil {
			return domain.Book{}, err
		}
	}
	if input.ISBN != existing.ISBN {
		if err := s.ensureISBNFree(ctx, input.ISBN, id); err != nil {
			return domain.Book{}, err
		}
	}

	existing.ISBN = input.ISBN
	existing.Title = input.Title
	existing.Genre = input.Genre
	existing.Description = input.Description
	existing.AuthorID = input.AuthorID

	return s.repo.Update(ctx, existing)
}

// Delete remove um livro existente.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Borrow marca o livro como emprestado agora, com o prazo informado.
func (s *Service) Borrow(ctx context.Context, id string, input domain.BorrowInput) (domain.Book, error) {
	if err := validateID(id); err != nil {
		return domain.Book{}, err
	}
	if err := s.validator.Check(input, "dados do empréstimo inválidos"); err != nil {
		return domain.Book{}, err
	}

	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}

	now := time.Now().UTC()
	if !input.DueDate.After(now) {
		return domain.Book{}, apperror.NewDomainError("A data de devolução deve estar no futuro.")
	}
	due := input.DueDate.UTC()
	book.BorrowedDate = &now
	book.DueDate = &due

	s.logger.Info("Livro emprestado.", map[string]interface{}{"id": id, "due_date": due})
	return s.repo.Update(ctx, book)
}

// Return limpa o estado de empréstimo do livro.
func (s *Service) Return(ctx context.Context, id string) (domain.Book, error) {
	if err := validateID(id); err != nil {
		return domain.Book{}, err
	}

	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}
	book.BorrowedDate = nil
	book.DueDate = nil

	s.logger.Info("Livro devolvido.", map[string]interface{}{"id": id})
	return s.repo.Update(ctx, book)
}

// AddImage associa uma imagem ao livro.
func (s *Service) AddImage(ctx context.Context, id string, input domain.ImageInput) (domain.Book, error) {
	if err := validateID(id); err != nil {
		return domain.Book{}, err
	}
	if err := s.validator.Check(input, "imagem inválida"); err != nil {
		return domain.Book{}, err
	}

	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}
	book.ImageURL = input.ImageURL

	return s.repo.Update(ctx, book)
}

// ensureISBNFree falha com ConflictError se outro livro (id diferente de selfID) usa o ISBN.
func (s *Service) ensureISBNFree(ctx context.Context, isbn, selfID string) error {
	holder, err := s.repo.GetByISBN(ctx, isbn)
	if apperror.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if holder.ID == selfID {
		return nil
	}
	s.logger.Warn("ISBN já cadastrado.", map[string]interface{}{"isbn": isbn, "holder_id": holder.ID})
	return apperror.NewConflictError(fmt.Sprintf("Já existe um livro com o ISBN %s.", isbn))
}

func (s *Service) ensureAuthor(ctx context.Context, authorID string) error {
	_, err := s.authors.GetByID(ctx, authorID)
	return err
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do livro deve ser um UUID válido.",
			apperror.FieldError{Field: "id", Message: "id deve ser um UUID válido"})
	}
	return nil
}
