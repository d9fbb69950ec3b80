package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates that the actor lacks the capability required for the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that no authenticated actor is present.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates that the action conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict")

// ErrInternal is a generic internal failure.
var ErrInternal = errors.New("internal error")

// ErrSyncTransport indicates that the Hub was unreachable or rejected a request.
var ErrSyncTransport = errors.New("hub sync transport error")

// ErrPersistence indicates a local write failure; partial writes have been rolled back.
var ErrPersistence = errors.New("persistence error")

// AppError carries an HTTP-ish status code, a caller-facing message and the
// underlying cause. errors.Is matches both the cause chain and the sentinel
// implied by Code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrValidation) etc. succeed based on the status code.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Code == http.StatusBadRequest
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrForbidden:
		return e.Code == http.StatusForbidden
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrConflict:
		return e.Code == http.StatusConflict
	case ErrInternal:
		return e.Code == http.StatusInternalServerError
	}
	return false
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError reports malformed or incomplete input.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewNotFoundError reports a missing journal, ledger, contact or account code.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

// NewForbiddenError reports a missing role capability.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message}
}

// NewConflictError reports a state conflict such as editing an approved journal.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

// NewSyncTransportError wraps a Hub failure.
func NewSyncTransportError(message string, err error) *AppError {
	return &AppError{Code: http.StatusBadGateway, Message: message, Err: errors.Join(ErrSyncTransport, err)}
}

// NewPersistenceError wraps a local write failure.
func NewPersistenceError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: errors.Join(ErrPersistence, err)}
}

// StatusCode returns the HTTP status associated with err, defaulting to 500.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrSyncTransport):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Message returns the caller-facing message of err.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
