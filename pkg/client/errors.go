package client

import (
	"fmt"
	"time"
)

// HTTPError is returned for non-2xx responses. Message comes from the
// response body when the service provides one.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NetworkError means the service could not be reached at all
type NetworkError struct {
	Err error
}

const networkMessage = "Unable to reach the recommendation service. Check your connection and try again."

func (e *NetworkError) Error() string {
	return networkMessage
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TimeoutError means the request was abandoned after the configured deadline
type TimeoutError struct {
	After time.Duration
	Err   error
}

func (e *TimeoutError) Error() string {
	if e.After <= 0 {
		return "The request timed out. Please try again."
	}
	return fmt.Sprintf("The request timed out after %s. Please try again.", e.After)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// DecodeError means a 2xx response carried a body that is not valid JSON
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("The service returned an unreadable response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
