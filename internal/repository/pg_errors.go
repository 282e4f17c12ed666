package repository

import (
	"errors"

	domainRepo "carenow/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL error codes that mean the targeted database or table is absent.
// These are mapped to ErrNotConfigured so callers can tell a missing schema
// apart from a real failure.
const (
	pgCodeUndefinedTable     = "42P01"
	pgCodeInvalidCatalogName = "3D000"
	pgCodeUniqueViolation    = "23505"
)

func isNotConfigured(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCodeUndefinedTable || pgErr.Code == pgCodeInvalidCatalogName
	}
	return false
}

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCodeUniqueViolation
	}
	return false
}

// translateError maps driver-level errors to the domain repository sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainRepo.ErrNotFound
	case isNotConfigured(err):
		return domainRepo.ErrNotConfigured
	case isDuplicateKey(err):
		return domainRepo.ErrDuplicate
	}
	return err
}
