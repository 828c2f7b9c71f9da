package apperrors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
)

// Kind classifies an application error.
type Kind string

const (
	KindValidation  Kind = "VALIDATION_ERROR"
	KindConflict    Kind = "CONFLICT"
	KindNotFound    Kind = "NOT_FOUND"
	KindAuth        Kind = "AUTH_ERROR"
	KindPersistence Kind = "PERSISTENCE_ERROR"
	KindDispatch    Kind = "DISPATCH_ERROR"
)

var statusByKind = map[Kind]int{
	KindValidation:  http.StatusBadRequest,
	KindConflict:    http.StatusConflict,
	KindNotFound:    http.StatusNotFound,
	KindAuth:        http.StatusForbidden,
	KindPersistence: http.StatusInternalServerError,
	KindDispatch:    http.StatusBadGateway,
}

// AppError represents an application error with a kind, a user facing message and an HTTP status
type AppError struct {
	Kind       Kind
	Message    string
	HTTPStatus int
	err        error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.err != nil && e.err.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.err
}

// New creates a new AppError of the given kind
func New(kind Kind, message string) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: statusByKind[kind],
		err:        errors.New(message),
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(err error, kind Kind, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind:       kind,
		Message:    message,
		HTTPStatus: statusByKind[kind],
		err:        errors.WithStack(err),
	}
}

func Validation(message string) *AppError { return New(KindValidation, message) }
func NotFound(message string) *AppError   { return New(KindNotFound, message) }
func Auth(message string) *AppError       { return New(KindAuth, message) }

// Is reports whether err is an AppError of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or the empty kind when err is not an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// MessageOf returns the user facing message of err, or fallback.
func MessageOf(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// WrapDBError translates gorm errors into application errors. Errors that
// already carry a kind are returned untouched.
func WrapDBError(err error, notFound, conflict string) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != "" {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Wrap(err, KindNotFound, notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Wrap(err, KindConflict, conflict)
	}
	return Wrap(err, KindPersistence, "Database operation failed")
}
