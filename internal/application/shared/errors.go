package shared

import (
	"time"

	domain "github.com/hirecoder/backend/internal/domain/shared"
)

// RateLimitedError is a RATE_LIMITED domain error that also carries when the
// caller may retry.
type RateLimitedError struct {
	*domain.DomainError
	RetryAfter time.Duration
}

// NewRateLimitedError creates a RateLimitedError
func NewRateLimitedError(message string, retryAfter time.Duration) *RateLimitedError {
	return &RateLimitedError{
		DomainError: domain.NewDomainError(domain.ErrRateLimited.Code, message),
		RetryAfter:  retryAfter,
	}
}

// Unwrap exposes the domain error to errors.As
func (e *RateLimitedError) Unwrap() error {
	return e.DomainError
}
