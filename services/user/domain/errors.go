package domain

import "errors"

// Sentinel errors for the user domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountExists indicates the email or phone is already registered.
	ErrAccountExists = errors.New("account already exists")

	// ErrInvalidCredentials indicates a failed login. The caller cannot tell
	// whether the account or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingIdentifier indicates registration without an email or phone.
	ErrMissingIdentifier = errors.New("email or phone required")
)
