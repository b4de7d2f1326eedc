package usecase

import "errors"

var (
	// ErrValidation wraps input problems caught before any persistence call.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden marks an action the acting user is not allowed to take.
	ErrForbidden = errors.New("action forbidden")

	ErrInvalidCredentials = errors.New("invalid email or password")
)
