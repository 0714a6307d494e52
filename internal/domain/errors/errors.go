// Package errors defines the application error taxonomy. Every failure that
// can reach the HTTP boundary is classified into one of the sentinels below
// before it leaves the usecase layer; the delivery layer renders the HTTP
// code and the client-facing message from the sentinel, never from raw
// internal fault text.
package errors

import (
	"net/http"

	"gatehouse/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // Client-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the client-facing message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. The client-facing messages are part of the API
// contract and are asserted by the handler tests; do not reword them.
var (
	// Validation errors: caused by the client, 422.
	ErrUsernameTaken = NewBaseError(
		http.StatusUnprocessableEntity,
		"USERNAME_TAKEN",
		"Username taken",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusUnprocessableEntity,
		"PASSWORD_TOO_SHORT",
		"Password must be longer than 3 chars",
		"",
	)

	// Authentication errors. Unknown-username and wrong-password share one
	// sentinel so the two causes stay indistinguishable to the client
	// (username enumeration prevention).
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	// ErrNoSession marks a request that reached a protected route without a
	// live session.
	ErrNoSession = NewBaseError(
		http.StatusUnauthorized,
		"NO_SESSION",
		"You shall not pass!",
		"",
	)

	// Session faults: the session store itself misbehaved.
	ErrSessionStoreFailed = NewBaseError(
		http.StatusInternalServerError,
		"SESSION_STORE_FAILED",
		"Session store unavailable",
		"",
	)

	// Account persistence faults.
	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create account",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the client-facing message.
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the wrapped database error for errors.Is/As walks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
