package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrRetriesExhausted signals that every attempt in the retry budget failed
// with a transient error.
var ErrRetriesExhausted = errors.New("failed after retries")

// TransportError wraps a network-level failure (connection error, timeout)
// where no HTTP response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RateLimitError captures an HTTP 429 response from the upstream API.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (retry_after=%s)", e.RetryAfter)
}

// StatusError captures any non-200, non-429 response. Body holds the leading
// portion of the response body for error reporting.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// DecodeError captures a 200 response whose body could not be parsed as JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid json in response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr, true
	}
	return nil, false
}

// AsDecodeError attempts to unwrap an error into a DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return decErr, true
	}
	return nil, false
}
