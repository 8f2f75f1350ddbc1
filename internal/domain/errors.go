package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/taskplace-api/internal/domain/validation"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
	ErrForbidden     = errors.New("forbidden")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUnprocessable = errors.New("unprocessable")
	ErrUnavailable   = errors.New("unavailable")
)

// InvalidFieldsMessage is the summary returned alongside a field error list.
const InvalidFieldsMessage = "Some fields in the request are invalid."

// ClientError is a rejection whose Message is safe to show to the caller.
// Kind is one of the sentinel errors above and drives the response status.
type ClientError struct {
	Kind    error
	Message string
}

// NewClientError builds a ClientError of the given kind.
func NewClientError(kind error, message string) *ClientError {
	return &ClientError{Kind: kind, Message: message}
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Message)
}

func (e *ClientError) Unwrap() error {
	return e.Kind
}

// ValidationError carries the ordered field failures of one validation pass.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr)
// to read verr.Errors.
type ValidationError struct {
	Errors []validation.FieldError
}

// NewValidationError snapshots the accumulator's errors.
func NewValidationError(acc *validation.Accumulator) *ValidationError {
	return &ValidationError{Errors: acc.Errors()}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
