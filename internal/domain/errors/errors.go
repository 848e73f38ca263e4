// Package errors defines the application-specific error types shared by the
// usecase and delivery layers. The HTTP error handler maps them onto status
// codes; 401 and 403 are deliberately distinct so clients can tell "log in"
// apart from "you lack permission".
package errors

import (
	"net/http"

	"blog/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication and authorization
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"valid credentials are required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid username or password",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid or expired session token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"insufficient permissions for this operation",
		"",
	)

	// Content
	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"post not found",
		"",
	)

	ErrSlugConflict = NewBaseError(
		http.StatusConflict,
		"SLUG_CONFLICT",
		"a post with this slug already exists",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"comment not found",
		"",
	)

	ErrParentCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"PARENT_COMMENT_NOT_FOUND",
		"parent comment not found on this post",
		"",
	)

	// Users
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)
)

// NewDatabaseExecuteError creates a database execution error with the
// underlying cause recorded in the details.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	details := ""
	if err != nil {
		details = err.Error()
	}

	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		details,
	)
}
