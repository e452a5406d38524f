package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPrecondition indicates that a business rule rejected the operation before any write.
var ErrPrecondition = errors.New("precondition failed")

// ErrPersistence indicates that the storage layer failed and the unit of work was rolled back.
var ErrPersistence = errors.New("persistence error")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code and a message on top of a wrapped error.
type AppError struct {
	Code    int
	Message string
	Err     error

	kind error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the sentinel implied by the status code,
// so a 500 from a repository satisfies errors.Is(err, ErrPersistence).
func (e *AppError) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

// NewAppError creates an AppError tagged with the sentinel for its code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err, kind: kindForCode(code)}
}

// NewNotFoundError creates a 404 AppError.
func NewNotFoundError(message string) *AppError {
	return NewAppError(404, message, nil)
}

// NewPreconditionError creates a 422 AppError.
func NewPreconditionError(message string) *AppError {
	return NewAppError(422, message, nil)
}

func kindForCode(code int) error {
	switch {
	case code == 400:
		return ErrValidation
	case code == 404:
		return ErrNotFound
	case code == 409:
		return ErrDuplicate
	case code == 422:
		return ErrPrecondition
	case code >= 500:
		return ErrPersistence
	default:
		return nil
	}
}

// ValidationError holds every problem found in a candidate set of journal lines.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError from a list of problems.
func NewValidationError(problems []string) *ValidationError {
	return &ValidationError{Problems: problems}
}
