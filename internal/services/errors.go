package services

import "errors"

// Error taxonomy shared by every service. Controllers map these onto
// HTTP statuses; anything unrecognized becomes an opaque 500.
var (
	// ErrInvalidID means the supplied identifier is not well formed.
	ErrInvalidID = errors.New("invalid record id")
	// ErrNotFound means the identifier resolves to no record.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a uniqueness constraint was violated.
	ErrConflict = errors.New("duplicate record")
	// ErrValidation means a required field is missing or an enumerated
	// field holds an undeclared value.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials means the password check failed on login.
	ErrInvalidCredentials = errors.New("invalid password")
)
