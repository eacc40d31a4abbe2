package openlibrary

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"testing"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyNetworkError_Timeout(t *testing.T) {
	err := &url.Error{
		Op:  "Get",
		URL: "https://openlibrary.org/search.json",
		Err: &net.OpError{Op: "dial", Net: "tcp", Err: timeoutError{}},
	}

	libErr := ClassifyNetworkError(err, "/search.json")

	if libErr.Type != ErrTypeTimeout {
		t.Errorf("Type = %v, want %v", libErr.Type, ErrTypeTimeout)
	}
	if libErr.Path != "/search.json" {
		t.Errorf("Path = %s", libErr.Path)
	}
}

func TestClassifyNetworkError_DeadlineExceeded(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", context.DeadlineExceeded)

	if got := ClassifyNetworkError(err, "/x").Type; got != ErrTypeTimeout {
		t.Errorf("Type = %v, want timeout", got)
	}
}

func TestClassifyNetworkError_Cancelled(t *testing.T) {
	err := &url.Error{Op: "Get", URL: "https://openlibrary.org", Err: context.Canceled}

	libErr := ClassifyNetworkError(err, "/x")
	if libErr.Type != ErrTypeNetwork || libErr.Message != "request cancelled" {
		t.Errorf("got %v / %q", libErr.Type, libErr.Message)
	}
}

func TestClassifyNetworkError_DNS(t *testing.T) {
	err := &net.DNSError{Err: "no such host", Name: "openlibrary.invalid", IsNotFound: true}

	libErr := ClassifyNetworkError(err, "/x")
	if libErr.Type != ErrTypeNetwork {
		t.Errorf("Type = %v, want network", libErr.Type)
	}
	if !strings.Contains(libErr.Message, "openlibrary.invalid") {
		t.Errorf("Message = %q, should name the host", libErr.Message)
	}
}

func TestClassifyNetworkError_Nil(t *testing.T) {
	if ClassifyNetworkError(nil, "/x") != nil {
		t.Error("ClassifyNetworkError(nil) should return nil")
	}
}

func TestLibraryErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewParseError("/search.json", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q, should include the cause", err.Error())
	}
	if strings.Contains(NewHTTPError(500, "/x").Error(), "caused by") {
		t.Error("errors without a cause should not mention one")
	}
}

func TestPredicates(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", NewNotFoundError("Author not found", "/authors/X"))

	tests := []struct {
		name      string
		err       error
		network   bool
		notFound  bool
		parse     bool
		malformed bool
	}{
		{"network", NewNetworkError("/x", errors.New("refused")), true, false, false, false},
		{"http", NewHTTPError(503, "/x"), true, false, false, false},
		{"not found wrapped", wrapped, false, true, false, false},
		{"parse", NewParseError("/x", errors.New("eof")), false, false, true, false},
		{"malformed", NewMalformedInputError("empty", nil), false, false, false, true},
		{"plain", errors.New("plain"), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNetworkError(tt.err); got != tt.network {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.network)
			}
			if got := IsNotFound(tt.err); got != tt.notFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.notFound)
			}
			if got := IsParseError(tt.err); got != tt.parse {
				t.Errorf("IsParseError() = %v, want %v", got, tt.parse)
			}
			if got := IsMalformedInput(tt.err); got != tt.malformed {
				t.Errorf("IsMalformedInput() = %v, want %v", got, tt.malformed)
			}
		})
	}
}

func TestShortMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{NewHTTPError(503, "/x"), "Open Library returned HTTP 503"},
		{NewNotFoundError("Book not found", "/works/X"), "Book not found"},
		{&LibraryError{Type: ErrTypeTimeout}, "Open Library did not respond in time"},
		{errors.New("plain"), "plain"},
	}
	for _, tt := range tests {
		if got := ShortMessage(tt.err); got != tt.want {
			t.Errorf("ShortMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestErrorTypeString(t *testing.T) {
	if ErrTypeNotFound.String() != "Not Found" {
		t.Errorf("ErrTypeNotFound.String() = %s", ErrTypeNotFound.String())
	}
	if ErrorType(99).String() != "ErrorType(99)" {
		t.Errorf("unknown type String() = %s", ErrorType(99).String())
	}
}
