package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInsufficientFunds  = errors.New("insufficient funds")

	// ErrNotAvailable is returned when a listing is already sold or reserved.
	ErrNotAvailable = errors.New("listing not available")

	// ErrConflict signals a concurrent transaction collision. Nothing has
	// committed, so the caller may safely retry the same request.
	ErrConflict = errors.New("conflict, retry the request")
)
