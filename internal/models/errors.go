package models

import "errors"

// Storage level errors shared by repositories and services.
var (
	ErrNotFound            = errors.New("record not found")
	ErrUniqueViolation     = errors.New("unique constraint violated")
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")
	ErrCacheMiss           = errors.New("cache miss")
)
