package shared

import (
	"errors"
	"strings"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Details []ValidationDetail `json:"details,omitempty"`
	Err     error              `json:"-"`
}

// ValidationDetail describes a single invalid field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause, if any
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches by code. A specific code such as PROPOSAL_NOT_FOUND also
// matches its generic sentinel ErrNotFound.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code || strings.HasSuffix(e.Code, "_"+t.Code)
}

// WithCause returns a copy of the error wrapping err
func (e *DomainError) WithCause(err error) *DomainError {
	cp := *e
	cp.Err = err
	return &cp
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: message,
		Details: []ValidationDetail{{Field: field, Message: message}},
	}
}

// ValidationErrors collects field errors before failing an operation.
type ValidationErrors []ValidationDetail

// Add records a field error
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationDetail{Field: field, Message: message})
}

// HasErrors reports whether any field error was recorded
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Err returns nil when empty, otherwise a VALIDATION_ERROR domain error
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(v))
	for _, d := range v {
		msgs = append(msgs, d.Field+": "+d.Message)
	}
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: strings.Join(msgs, "; "),
		Details: append([]ValidationDetail(nil), v...),
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrValidation    = NewDomainError("VALIDATION_ERROR", "Validation failed")
	ErrUnauthorized  = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden     = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState  = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrRateLimited   = NewDomainError("RATE_LIMITED", "Too many requests, please retry later")

	ErrConcurrentModification = NewDomainError("CONCURRENT_MODIFICATION", "The record has been modified by another request")
)
