package authorrepo_test

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
	"golibrary/internal/repository/authorrepo"
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

func newAuthor() domain.Author {
	return domain.Author{
		FirstName:   "Machado",
		LastName:    "de Assis",
		DateOfBirth: time.Date(1839, 6, 21, 0, 0, 0, 0, time.UTC),
		Country:     "Brasil",
	}
}

func TestAuthorRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := authorrepo.NewAuthorRepository(db, 5*time.Second, logger.NewWithWriter(io.Discard, "debug"))
	ctx := context.Background()

	created, err := repo.Create(ctx, newAuthor())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	created.Country = "Brasil (RJ)"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Brasil (RJ)", updated.Country)
	assert.Equal(t, "Machado", updated.FirstName)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestAuthorRepository_Delete_CascadesBooks(t *testing.T) {
	db := newTestDB(t)
	repo := authorrepo.NewAuthorRepository(db, 5*time.Second, logger.NewWithWriter(io.Discard, "debug"))
	ctx := context.Background()

	author, err := repo.Create(ctx, newAuthor())
	require.NoError(t, err)
	other, err := repo.Create(ctx, newAuthor())
	require.NoError(t, err)

	books := []model.BookModel{
		{ID: uuid.NewString(), ISBN: "9780000000101", Title: "Dom Casmurro", Genre: "Romance", AuthorID: author.ID},
		{ID: uuid.NewString(), ISBN: "9780000000102", Title: "Quincas Borba", Genre: "Romance", AuthorID: author.ID},
		{ID: uuid.NewString(), ISBN: "9780000000103", Title: "Outro", Genre: "Romance", AuthorID: other.ID},
	}
	require.NoError(t, db.Create(&books).Error)

	deleted, err := repo.Delete(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	var remaining int64
	require.NoError(t, db.Model(&model.BookModel{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	_, err = repo.GetByID(ctx, author.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestAuthorRepository_Delete_Fail_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := authorrepo.NewAuthorRepository(db, 5*time.Second, logger.NewWithWriter(io.Discard, "debug"))

	_, err := repo.Delete(context.Background(), uuid.NewString())
	assert.IsType(t, &apperror.NotFoundError{}, err)
}
