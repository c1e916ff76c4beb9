package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password, so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken is returned when registering an already-used username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrValidation wraps field-level validation failures. The wrapped
	// message is safe to show to the client.
	ErrValidation = errors.New("validation failed")
)
