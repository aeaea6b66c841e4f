package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when the input fails validation (HTTP 400).
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist (HTTP 404).
var ErrNotFound = errors.New("not found")

// ErrMissingOrderID is returned when an order id path parameter is absent or blank.
var ErrMissingOrderID = fmt.Errorf("%w: order_id is required", ErrInvalid)

// ErrMalformedBody is returned when a request body is not valid JSON of the expected shape.
var ErrMalformedBody = fmt.Errorf("%w: malformed request body", ErrInvalid)

// MissingFieldError reports a required request field that is absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Unwrap lets errors.Is(err, ErrInvalid) match.
func (e *MissingFieldError) Unwrap() error { return ErrInvalid }

// MissingField returns a MissingFieldError for the given field name.
func MissingField(field string) error {
	return &MissingFieldError{Field: field}
}
