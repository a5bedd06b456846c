package database

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation é o SQLSTATE do PostgreSQL para violação de unicidade.
const uniqueViolation = "23505"

// IsUniqueViolation informa se err veio de uma constraint UNIQUE.
// Cobre o erro traduzido pelo gorm e o *pq.Error cru do driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
