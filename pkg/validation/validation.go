// Package validation provides structured field validation for domain models.
//
// This package is the narrow contract the labware models consume for input
// checking: typed errors that name the offending field and carry a
// machine-readable code, plus a small set of field validators for integers,
// strings, and UUID identities.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - NULL_VALUE: a required field was absent
//   - OUT_OF_RANGE: a numeric field was outside its allowed bounds
//   - WRONG_LENGTH: a string field was shorter or longer than allowed
//   - INVALID_VALUE: a field could not be interpreted at all
//
// # Usage
//
//	count, err := validation.Int("row_count", def.RowCount, 1, 32)
//	if validation.Is(err, validation.ErrCodeOutOfRange) {
//	    // Handle range failure
//	}
package validation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Code represents a machine-readable validation error code.
type Code string

// Error codes for the different validation failure categories.
const (
	ErrCodeNullValue    Code = "NULL_VALUE"
	ErrCodeOutOfRange   Code = "OUT_OF_RANGE"
	ErrCodeWrongLength  Code = "WRONG_LENGTH"
	ErrCodeInvalidValue Code = "INVALID_VALUE"
)

// Error is a structured validation error naming the field that failed.
type Error struct {
	Code    Code   // Machine-readable error code
	Field   string // Name of the offending field (e.g., "row_count")
	Message string // Human-readable message
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

// New creates a new Error with the given code, field, and formatted message.
func New(code Code, field, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Is reports whether err carries the given validation code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// FieldOf extracts the field name from a validation error.
// Returns empty string if err is not an *Error.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// Int validates an optional integer field against inclusive bounds.
// A nil value fails with ErrCodeNullValue; a value outside [min, max]
// fails with ErrCodeOutOfRange. On success the dereferenced value is
// returned.
func Int(field string, value *int, min, max int) (int, error) {
	if value == nil {
		return 0, New(ErrCodeNullValue, field, "required integer is not set")
	}
	if *value < min || *value > max {
		return 0, New(ErrCodeOutOfRange, field, "%d is outside [%d, %d]", *value, min, max)
	}
	return *value, nil
}

// String validates a string field against inclusive length bounds.
// When allowEmpty is true an empty string passes regardless of minLen;
// this is how optional string fields are expressed.
func String(field, value string, minLen, maxLen int, allowEmpty bool) error {
	if value == "" {
		if allowEmpty {
			return nil
		}
		return New(ErrCodeNullValue, field, "required string is not set")
	}
	if len(value) < minLen {
		return New(ErrCodeWrongLength, field, "length %d is below minimum %d", len(value), minLen)
	}
	if len(value) > maxLen {
		return New(ErrCodeWrongLength, field, "length %d exceeds maximum %d", len(value), maxLen)
	}
	return nil
}

// UUID validates an identity field. The zero UUID counts as unset: with
// autopopulate a fresh random identity is generated and returned, without
// it the zero value fails with ErrCodeNullValue. Non-zero identities are
// returned unchanged.
func UUID(field string, id uuid.UUID, autopopulate bool) (uuid.UUID, error) {
	if id == uuid.Nil {
		if autopopulate {
			return uuid.New(), nil
		}
		return uuid.Nil, New(ErrCodeNullValue, field, "required identity is not set")
	}
	return id, nil
}
