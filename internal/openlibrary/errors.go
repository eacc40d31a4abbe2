package openlibrary

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates the request could not complete (connection
	// refused, DNS failure, cancelled context, ...)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request ran past its deadline
	ErrTypeTimeout
	// ErrTypeHTTP indicates the server answered with a non-success status
	ErrTypeHTTP
	// ErrTypeNotFound indicates the requested entity does not exist
	ErrTypeNotFound
	// ErrTypeParse indicates the response body could not be decoded
	ErrTypeParse
	// ErrTypeMalformedInput indicates the caller passed something unusable
	// (an empty key, a pattern that cannot be matched safely)
	ErrTypeMalformedInput
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeNotFound:
		return "Not Found"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeMalformedInput:
		return "Malformed Input"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// LibraryError represents an error that occurred while talking to Open Library
type LibraryError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Path       string    // Request path (if applicable)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *LibraryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *LibraryError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError turns a transport error into a LibraryError. It
// looks through *url.Error wrappers, as returned by http.Client.Do.
func ClassifyNetworkError(err error, path string) *LibraryError {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &LibraryError{Type: ErrTypeTimeout, Message: "request timed out", Path: path, Err: err}
	}

	if errors.Is(err, context.Canceled) {
		return &LibraryError{Type: ErrTypeNetwork, Message: "request cancelled", Path: path, Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &LibraryError{
			Type:    ErrTypeNetwork,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Path:    path,
			Err:     err,
		}
	}

	return &LibraryError{Type: ErrTypeNetwork, Message: "request failed", Path: path, Err: err}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(path string, err error) *LibraryError {
	return ClassifyNetworkError(err, path)
}

// NewHTTPError creates an error for a non-success status
func NewHTTPError(statusCode int, path string) *LibraryError {
	return &LibraryError{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
		Path:       path,
	}
}

// NewNotFoundError creates an error for a missing entity
func NewNotFoundError(message, path string) *LibraryError {
	return &LibraryError{Type: ErrTypeNotFound, Message: message, Path: path}
}

// NewParseError creates a parsing error
func NewParseError(path string, err error) *LibraryError {
	return &LibraryError{Type: ErrTypeParse, Message: "failed to decode response", Path: path, Err: err}
}

// NewMalformedInputError creates an input validation error
func NewMalformedInputError(message string, err error) *LibraryError {
	return &LibraryError{Type: ErrTypeMalformedInput, Message: message, Err: err}
}

func errorType(err error) (ErrorType, bool) {
	var libErr *LibraryError
	if errors.As(err, &libErr) {
		return libErr.Type, true
	}
	return 0, false
}

// IsNetworkError reports whether err is a transport failure or a
// non-success status. Both are "the request did not produce data".
func IsNetworkError(err error) bool {
	t, ok := errorType(err)
	return ok && (t == ErrTypeNetwork || t == ErrTypeTimeout || t == ErrTypeHTTP)
}

// IsNotFound checks if an error is a not-found error
func IsNotFound(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeNotFound
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeParse
}

// IsMalformedInput checks if an error is an input validation error
func IsMalformedInput(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeMalformedInput
}

// ShortMessage returns a concise, user-friendly error message
func ShortMessage(err error) string {
	var libErr *LibraryError
	if !errors.As(err, &libErr) {
		return err.Error()
	}

	switch libErr.Type {
	case ErrTypeTimeout:
		return "Open Library did not respond in time"
	case ErrTypeNetwork:
		return "Could not reach Open Library - check your connection"
	case ErrTypeHTTP:
		return fmt.Sprintf("Open Library returned HTTP %d", libErr.StatusCode)
	case ErrTypeNotFound:
		return libErr.Message
	case ErrTypeParse:
		return "Open Library sent a response that could not be read"
	case ErrTypeMalformedInput:
		return libErr.Message
	default:
		return libErr.Message
	}
}
