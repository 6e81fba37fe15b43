package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies API failures so callers can branch on the failure
// class without inspecting messages or status codes.
type ErrorKind int

const (
	// KindAPI is any HTTP failure not covered by a more specific kind.
	KindAPI ErrorKind = iota
	// KindAuthentication covers 401 responses and missing credentials.
	KindAuthentication
	// KindRateLimit covers 429 responses.
	KindRateLimit
	// KindValidation covers 400 and 422 responses.
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindRateLimit:
		return "rate limit"
	case KindValidation:
		return "validation"
	default:
		return "api"
	}
}

// Error is a failed API response. StatusCode carries the HTTP status and
// Message the server-supplied error message when one was present.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

func IsAuthentication(err error) bool {
	return kindOf(err) == KindAuthentication
}

func IsRateLimit(err error) bool {
	return kindOf(err) == KindRateLimit
}

func IsValidation(err error) bool {
	return kindOf(err) == KindValidation
}

func kindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return -1
}
