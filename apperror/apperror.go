// Package apperror defines a centralized system for application-specific errors.
// This approach promotes consistent error handling and responses across the application:
// services return typed errors, and the HTTP boundary maps each type to exactly one
// status code and one JSON shape.
package apperror

import (
	"errors"
	"fmt"
	// `net/http` is used for HTTP status codes.
	"net/http"
)

// ErrorType is an enumeration (using `iota`) for different categories of application errors.
type ErrorType int

const (
	// UnknownError is for unspecified errors
	UnknownError ErrorType = iota
	// StorageError represents an error originating from the persistent key-value store
	StorageError
	// ConfigError represents an error related to application configuration
	ConfigError
	// AuthError represents an authentication error (e.g. invalid credentials)
	AuthError
	// UnauthorizedError represents an authorization error (e.g. insufficient permissions)
	UnauthorizedError
	// NotFoundError represents a missing entity (user, post, conversation, ...)
	NotFoundError
	// ValidationError represents an input validation error (empty post, blank comment, ...)
	ValidationError
	// BadRequestError represents a generic bad request
	BadRequestError
	// InternalError represents a generic internal server error
	InternalError
	// MigrationError represents an error while preparing the store schema
	MigrationError
	// ConflictError represents a conflict, e.g., username already taken
	ConflictError
)

// AppError is a custom error type for the application.
// It satisfies the standard `error` interface via its `Error()` method and
// allows wrapping an underlying error (`Err`) for more detailed debugging.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error // Underlying error
}

// Error returns the string representation of the error, satisfying the `error` interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		// If there's an underlying error, include its message.
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error. This is part of Go's error wrapping convention,
// allowing `errors.Is` and `errors.As` to inspect the chain of wrapped errors.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type
func (e *AppError) StatusCode() int {
	// This switch statement maps our custom `ErrorType` to standard HTTP status codes.
	switch e.Type {
	case StorageError:
		return http.StatusInternalServerError
	case ConfigError:
		return http.StatusInternalServerError
	case AuthError:
		// 401 for authentication failures (bad credentials, bad token).
		return http.StatusUnauthorized
	case UnauthorizedError:
		// 403 for authorization failures (authenticated, but not allowed).
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError:
		return http.StatusBadRequest
	case BadRequestError:
		return http.StatusBadRequest
	case InternalError:
		return http.StatusInternalServerError
	case MigrationError:
		return http.StatusInternalServerError
	case ConflictError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError. This is a generic constructor, useful when the
// error type is determined dynamically.
func NewAppError(errType ErrorType, message string, underlyingError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlyingError,
	}
}

// Constructor functions for specific error types.
// These provide a more readable and type-safe way to create common `AppError` types.

// NewStorageError creates a new StorageError
func NewStorageError(message string, underlyingError error) *AppError {
	return NewAppError(StorageError, message, underlyingError)
}

// NewConfigError creates a new ConfigError
func NewConfigError(message string, underlyingError error) *AppError {
	return NewAppError(ConfigError, message, underlyingError)
}

// NewAuthError creates a new AuthError (for authentication issues)
func NewAuthError(message string, underlyingError error) *AppError {
	return NewAppError(AuthError, message, underlyingError)
}

// NewUnauthorizedError creates a new UnauthorizedError (for authorization issues)
func NewUnauthorizedError(message string, underlyingError error) *AppError {
	return NewAppError(UnauthorizedError, message, underlyingError)
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(message string, underlyingError error) *AppError {
	return NewAppError(NotFoundError, message, underlyingError)
}

// NewValidationError creates a new ValidationError
func NewValidationError(message string, underlyingError error) *AppError {
	return NewAppError(ValidationError, message, underlyingError)
}

// NewBadRequestError creates a new BadRequestError
func NewBadRequestError(message string, underlyingError error) *AppError {
	return NewAppError(BadRequestError, message, underlyingError)
}

// NewInternalError creates a new InternalError
func NewInternalError(message string, underlyingError error) *AppError {
	return NewAppError(InternalError, message, underlyingError)
}

// NewMigrationError creates a new MigrationError
func NewMigrationError(message string, underlyingError error) *AppError {
	return NewAppError(MigrationError, message, underlyingError)
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string, underlyingError error) *AppError {
	return NewAppError(ConflictError, message, underlyingError)
}

// ErrorResponse represents a generic error response payload for API clients.
type ErrorResponse struct {
	Error string `json:"error" example:"A description of the error"`
}

// ToResponse converts an AppError to an ErrorResponse suitable for API responses.
// Only the user-facing `Message` is included, not the underlying `Err` details.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// FromError attempts to convert a generic error to an *AppError.
// It returns the *AppError and true if successful, otherwise nil and false.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	ae, ok := err.(*AppError)
	return ae, ok
}

// Helper functions to check error types.
// These use `errors.As` so they keep working when errors are wrapped.

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsAuthError checks if an error is an AuthError (authentication problem)
func IsAuthError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthError
}

// IsValidationError checks if an error is a Validation error
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsConflictError checks if an error is a Conflict error
func IsConflictError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}
