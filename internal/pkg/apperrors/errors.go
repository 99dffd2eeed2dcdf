package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure the services produce wraps exactly one of
// these, so callers can classify with errors.Is without depending on
// message text.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNotFound       = errors.New("resource not found")
	ErrStorage        = errors.New("storage failure")
)

// Error carries an error kind together with a human-readable message and
// optional context (the offending field, the underlying driver error).
type Error struct {
	Kind    error
	Message string
	Field   string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the kind sentinel and the underlying cause to
// errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewInvalidInput creates an invalid-input error with the given message.
func NewInvalidInput(message string) *Error {
	return &Error{Kind: ErrInvalidInput, Message: message}
}

// NewInvalidInputf creates an invalid-input error with a formatted message.
func NewInvalidInputf(format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NewDuplicateEntry creates a duplicate-entry error for a natural-key
// collision on the given field.
func NewDuplicateEntry(entity, field string, value any) *Error {
	return &Error{
		Kind:    ErrDuplicateEntry,
		Message: fmt.Sprintf("%s with %s '%v' already exists", entity, field, value),
		Field:   field,
	}
}

// NewNotFound creates a not-found error for the given entity id.
func NewNotFound(entity string, id int64) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("%s with id %d not found", entity, id),
	}
}

// NewStorage wraps a storage-layer failure. The cause is preserved for
// logging and unwrapping; it is never swallowed.
func NewStorage(op string, cause error) *Error {
	return &Error{
		Kind:    ErrStorage,
		Message: fmt.Sprintf("storage failure during %s: %v", op, cause),
		Cause:   cause,
	}
}
