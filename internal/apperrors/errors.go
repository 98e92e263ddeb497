// Package apperrors defines the error taxonomy shared by the engine and the
// HTTP layer.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error
type Kind string

const (
	// KindValidation marks a request rejected before any persistence
	KindValidation Kind = "VALIDATION"
	// KindConflict marks a duplicate idempotency key; treated as a benign skip
	KindConflict Kind = "CONFLICT"
	// KindTransient marks a per-item store failure recorded in the run summary
	KindTransient Kind = "TRANSIENT"
	// KindFatal marks a failure that aborts an entire engine run
	KindFatal Kind = "FATAL"
	// KindNotFound marks a missing record
	KindNotFound Kind = "NOT_FOUND"
	// KindUnauthorized marks a failed credential check
	KindUnauthorized Kind = "UNAUTHORIZED"
)

// AppError carries a kind alongside the wrapped cause
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without a cause
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap creates an AppError around a cause
func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// Validation creates a validation error
func Validation(message string) *AppError {
	return New(KindValidation, message)
}

// Fatal wraps a run-aborting error
func Fatal(message string, err error) *AppError {
	return Wrap(KindFatal, message, err)
}

// Transient wraps a per-item error
func Transient(message string, err error) *AppError {
	return Wrap(KindTransient, message, err)
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// HTTPStatus maps an error to the status code handlers should respond with
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
