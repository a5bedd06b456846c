package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"golibrary/internal/domain"
	apperror "golibrary/internal/errors"
	"golibrary/internal/pkg/validation"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fieldNames(fields []apperror.FieldError) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	return names
}

func validBook() domain.BookInput {
	return domain.BookInput{
		ISBN:     "9780134190440",
		Title:    "The Go Programming Language",
		Genre:    "Programação",
		AuthorID: uuid.New().String(),
	}
}

func TestValidate_Book_Valid(t *testing.T) {
	v := validation.New()
	assert.Empty(t, v.Validate(validBook()))
}

func TestValidate_Book_CollectsAllErrors(t *testing.T) {
	v := validation.New()

	fields := v.Validate(domain.BookInput{
		ISBN:        "123",
		Title:       "",
		Genre:       strings.Repeat("g", 101),
		Description: strings.Repeat("d", 501),
		AuthorID:    "",
	})

	assert.ElementsMatch(t, []string{"isbn", "title", "genre", "description", "author_id"}, fieldNames(fields))
}

func TestValidate_Book_ISBNBounds(t *testing.T) {
	v := validation.New()

	for _, isbn := range []string{"0123456789", "0123456789123"} {
		in := validBook()
		in.ISBN = isbn
		assert.Empty(t, v.Validate(in), isbn)
	}
	for _, isbn := range []string{"012345678", "01234567891234"} {
		in := validBook()
		in.ISBN = isbn
		assert.Equal(t, []string{"isbn"}, fieldNames(v.Validate(in)), isbn)
	}
}

func TestValidate_Author_DateOfBirthMustBePast(t *testing.T) {
	v := validation.New()

	in := domain.AuthorInput{
		FirstName:   "Ursula",
		LastName:    "Le Guin",
		DateOfBirth: time.Date(1929, 10, 21, 0, 0, 0, 0, time.UTC),
		Country:     "EUA",
	}
	assert.Empty(t, v.Validate(in))

	in.DateOfBirth = time.Now().Add(24 * time.Hour)
	fields := v.Validate(in)
	require.Len(t, fields, 1)
	assert.Equal(t, "date_of_birth", fields[0].Field)
	assert.Contains(t, fields[0].Message, "passado")
}

func TestValidate_Author_MissingEverything(t *testing.T) {
	v := validation.New()
	fields := v.Validate(domain.AuthorInput{})
	assert.ElementsMatch(t, []string{"first_name", "last_name", "date_of_birth", "country"}, fieldNames(fields))
}

func TestValidate_Register(t *testing.T) {
	v := validation.New()

	assert.Empty(t, v.Validate(domain.RegisterInput{Username: "alice", Password: "s3cret!", Role: "User"}))

	fields := v.Validate(domain.RegisterInput{
		Username: strings.Repeat("u", 101),
		Password: "12345",
		Role:     strings.Repeat("r", 51),
	})
	assert.ElementsMatch(t, []string{"username", "password", "role"}, fieldNames(fields))
}

func TestCheck_ReturnsValidationError(t *testing.T) {
	v := validation.New()

	err := v.Check(domain.RegisterInput{}, "dados de registro inválidos")

	require.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Len(t, apperror.FieldsOf(err), 3)
	assert.NoError(t, v.Check(domain.RegisterInput{Username: "bob", Password: "123456", Role: "User"}, "x"))
}
