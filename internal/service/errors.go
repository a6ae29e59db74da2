package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrDuplicateEmail      = errors.New("an account with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUnauthenticated     = errors.New("authentication required")
	ErrForbidden           = errors.New("operation is not permitted for this account")
	ErrTokenCreationFailed = errors.New("session token creation failed")
)
