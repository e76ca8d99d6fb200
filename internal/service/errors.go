package service

import "errors"

// Errors surfaced by AuthService.  Handlers map each to its own payload code
// and never reveal whether the email or the password was wrong beyond
// "invalid credentials".
var (
	// ErrConflict: the email is already registered.
	ErrConflict = errors.New("user already exists")
	// ErrNotFound: no user matches the email.
	ErrNotFound = errors.New("user does not exist")
	// ErrInvalidCredentials: the password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidInput: a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal wraps store, hashing and signing failures.
	ErrInternal = errors.New("internal error")
)
