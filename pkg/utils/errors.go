package utils

import "fmt"

// Typed service errors. Handlers match against these with [errors.As] to pick
// the HTTP status; services never retry them.

// NotFoundError is returned when a lookup misses.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError is returned when a unique field (username, email) is already taken.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// InvalidCredentialsError is returned on a password mismatch during login.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return "invalid credentials"
}

// AccessDeniedError is returned when the caller's role does not satisfy
// the operation's policy.
type AccessDeniedError struct {
	Operation string
	Role      string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied: role %s may not perform %s", e.Role, e.Operation)
}

// InvalidInputError is returned for malformed input that never reaches the
// store (empty password, malformed stored hash).
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
