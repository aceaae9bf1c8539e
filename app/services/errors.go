package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the controllers.
var (
	// ErrInvalidInput marks a request payload that failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned when login fails. It deliberately
	// does not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a token cannot be verified.
	ErrInvalidToken = errors.New("invalid token")
	// ErrEmailTaken is returned when a signup or update collides with an
	// existing email.
	ErrEmailTaken = errors.New("email already exists")
	// ErrConflict is returned when a delete would strand dependent
	// resources.
	ErrConflict = errors.New("resource has dependents")
)
