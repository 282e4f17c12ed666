package repository

import "errors"

var (
	// ErrNotConfigured is returned when the backing database or one of its
	// tables does not exist. Callers rely on this being distinguishable from
	// other failures to choose fallback behavior instead of failing outright.
	ErrNotConfigured = errors.New("backend database is not configured")

	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned on a unique-constraint violation.
	ErrDuplicate = errors.New("record already exists")
)
