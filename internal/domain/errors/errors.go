// Package errors defines the closed error taxonomies of the domain and their HTTP projections.
package errors

import (
	"net/http"

	"portfolio/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

func (e *BaseError) Error() string {
	return e.errorCode + ": " + e.message
}

// Is matches any BaseError carrying the same business code.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

// Projection maps the codes of one closed taxonomy onto AppErrors. Codes without an entry use
// the fallback, so a projection is total over its code type.
type Projection[E ~string] struct {
	table    map[E]AppError
	fallback AppError
}

// NewProjection creates a projection with the given table and fallback.
func NewProjection[E ~string](fallback AppError, table map[E]AppError) Projection[E] {
	return Projection[E]{table: table, fallback: fallback}
}

// Project returns the AppError of code.
func (p Projection[E]) Project(code E) AppError {
	if appErr, ok := p.table[code]; ok {
		return appErr
	}

	return p.fallback
}

// Session guard errors raised by the HTTP layer.
var (
	ErrUnauthenticated = NewBaseError(http.StatusUnauthorized, "UNAUTHENTICATED", "Sign in required")
	ErrSessionMissing  = NewBaseError(http.StatusUnauthorized, "SESSION_MISSING", "No active session")
)
