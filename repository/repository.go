package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Repository is the persistence gateway. Every mutating operation runs in
// its own transaction: committed on success, fully rolled back on failure.
type Repository struct {
	db *gorm.DB
}

// New creates a repository over an open database handle
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// notFound translates gorm's record-not-found into a classified error
func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewError(KindNotFound, format, args...)
	}
	return err
}
