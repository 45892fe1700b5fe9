package services

import "errors"

// Error variables
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserHasPosts       = errors.New("user still authors posts")
	ErrRoleDoesNotExist   = errors.New("role does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPassword    = errors.New("password must be a string")
	ErrPasswordTooLong    = errors.New("password is longer than 72 bytes")
	ErrPostNotFound       = errors.New("post not found")
	ErrNotPostAuthor      = errors.New("caller is not the author of the post")
)
