package repository

import (
	"errors"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/db"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// IsDuplicate detects unique constraint violation.
func IsDuplicate(err error) bool {
	return db.IsUniqueViolation(err)
}
