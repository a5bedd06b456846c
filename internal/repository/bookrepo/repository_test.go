package bookrepo_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"golibrary/internal/domain"
	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/logger"
	"golibrary/internal/repository/bookrepo"
	"golibrary/internal/repository/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "library.db")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func newRepo(t *testing.T) *bookrepo.BookRepository {
	return bookrepo.NewBookRepository(newTestDB(t), 5*time.Second, logger.NewWithWriter(io.Discard, "debug"))
}

func newBook(isbn, authorID string) domain.Book {
	return domain.Book{
		ISBN:     isbn,
		Title:    "Livro " + isbn,
		Genre:    "Ficção",
		AuthorID: authorID,
	}
}

func TestBookRepository_CreateAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	authorID := uuid.NewString()

	created, err := repo.Create(ctx, newBook("9780000000001", authorID))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "9780000000001", byID.ISBN)
	assert.False(t, byID.IsBorrowed())

	byISBN, err := repo.GetByISBN(ctx, "9780000000001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byISBN.ID)

	books, err := repo.GetByAuthor(ctx, authorID)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestBookRepository_Create_Fail_DuplicateISBN(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newBook("9780000000002", uuid.NewString()))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newBook("9780000000002", uuid.NewString()))
	require.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestBookRepository_Update_BorrowAndReturn(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	book, err := repo.Create(ctx, newBook("9780000000003", uuid.NewString()))
	require.NoError(t, err)

	now := time.Now().UTC()
	due := now.Add(14 * 24 * time.Hour)
	book.BorrowedDate = &now
	book.DueDate = &due

	borrowed, err := repo.Update(ctx, book)
	require.NoError(t, err)
	require.True(t, borrowed.IsBorrowed())
	assert.WithinDuration(t, due, *borrowed.DueDate, time.Second)

	borrowed.BorrowedDate = nil
	borrowed.DueDate = nil
	returned, err := repo.Update(ctx, borrowed)
	require.NoError(t, err)
	assert.Nil(t, returned.BorrowedDate)
	assert.Nil(t, returned.DueDate)
}

func TestBookRepository_Update_Fail_NotFound(t *testing.T) {
	repo := newRepo(t)

	book := newBook("9780000000004", uuid.NewString())
	book.ID = uuid.NewString()

	_, err := repo.Update(context.Background(), book)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestBookRepository_Delete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	book, err := repo.Create(ctx, newBook("9780000000005", uuid.NewString()))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, book.ID))

	_, err = repo.GetByID(ctx, book.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)

	err = repo.Delete(ctx, book.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestBookRepository_CanceledContext(t *testing.T) {
	repo := newRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, newBook("9780000000006", uuid.NewString()))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.GetByISBN(context.Background(), "9780000000006")
	assert.IsType(t, &apperror.NotFoundError{}, err)
}
