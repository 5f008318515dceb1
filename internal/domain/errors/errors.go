// Package errors defines the errors that reach API clients. Each carries the
// HTTP status, a stable business code and a client-safe message.
package errors

import (
	"net/http"

	"holocron/internal/errors"
)

// AppError is rendered by the HTTP layer into the error envelope.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is logged, never sent for 5xx responses.
	Details() string
}

// BaseError is the value type behind the predefined errors below.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string { return e.message }
func (e *BaseError) HTTPCode() int { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string { return e.message }
func (e *BaseError) Details() string { return e.details }

// WrapMessage adds context and a stack while keeping errors.Is/As on e working.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy; the predefined errors are shared.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

func define(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

// Predefined error types
var (
	// Catalog lookups
	ErrUserNotFound      = define(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrCharacterNotFound = define(http.StatusNotFound, "CHARACTER_NOT_FOUND", "Character not found")
	ErrPlanetNotFound    = define(http.StatusNotFound, "PLANET_NOT_FOUND", "Planet not found")

	// Favorites
	ErrFavoriteNotFound      = define(http.StatusNotFound, "FAVORITE_NOT_FOUND", "Favorite not found")
	ErrFavoriteAlreadyExists = define(http.StatusConflict, "FAVORITE_ALREADY_EXISTS", "Favorite already exists")
	ErrInvalidFavoriteKind   = define(http.StatusBadRequest, "INVALID_FAVORITE_KIND", "Favorite kind must be people or planet")

	// Input
	ErrInvalidID        = define(http.StatusBadRequest, "INVALID_ID", "Id must be a non-negative integer")
	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")

	// Sessions
	ErrInvalidCredentials = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrUnauthorized       = define(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	ErrTokenInvalid       = define(http.StatusUnauthorized, "TOKEN_INVALID", "Invalid or expired token")
	ErrUserInactive       = define(http.StatusForbidden, "USER_INACTIVE", "User account is inactive")
)

// DatabaseExecuteError wraps a store failure as a 500. The driver error stays
// reachable through Unwrap for logging but is not part of Message.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string { return e.details }
