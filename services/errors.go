// Error values shared across the query layer. Handlers translate these
// into HTTP responses: ErrNotFound becomes 404 (a cross-tenant lookup is
// deliberately indistinguishable from a missing id), a *ValidationError
// becomes 400 with the failing field, and ErrInvalidCredentials becomes
// 401. Anything else is an unexpected server error.
package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record does not exist or belongs to
// another lawyer. Callers must not be able to tell the two apart.
var ErrNotFound = errors.New("record not found")

// ErrInvalidCredentials is returned on bad username/password and on
// invalid, expired or blacklisted tokens.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports the first failing validation rule for an
// operation, identified by field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidationError unwraps err into a *ValidationError if it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
