// Package common defines shared constants and sentinel errors used across
// client and server layers of PulseDash. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrStorage marks an unrecoverable persistence failure (unreadable or
	// malformed store file). It is terminal for the request.
	ErrStorage = errors.New("storage error")

	// Service-level errors. The messages are part of the API contract and
	// are returned verbatim in HTTP error bodies.
	ErrEmailTaken = errors.New("Email is already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The single message keeps the two cases indistinguishable
	// to the caller.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// Boundary-level validation error.
	ErrValidation = errors.New("validation error")
)
