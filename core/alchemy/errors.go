package alchemy

import (
	"errors"
	"fmt"
	"net"
)

// ErrEmptyOwner is returned before any request when no owner address is given.
var ErrEmptyOwner = errors.New("owner address is required")

// ErrorClass represents a classification of request failures.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx responses.
	ErrorClassClient ErrorClass = "client"
	// ErrorClassServer represents 5xx responses.
	ErrorClassServer ErrorClass = "server"
	// ErrorClassDecode represents a 2xx response with an unreadable body.
	ErrorClassDecode ErrorClass = "decode"
	// ErrorClassNetwork represents transport failures and timeouts.
	ErrorClassNetwork ErrorClass = "network"
)

// NetworkError is returned when the request did not produce a response.
type NetworkError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("alchemy %s: network error: %v", e.Endpoint, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a timeout.
func (e *NetworkError) Timeout() bool {
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// APIError is returned for non-2xx responses and malformed bodies.
type APIError struct {
	Endpoint   string
	StatusCode int
	Class      ErrorClass
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("alchemy %s: %s error (status %d): %s: %v",
			e.Endpoint, e.Class, e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("alchemy %s: %s error (status %d): %s",
		e.Endpoint, e.Class, e.StatusCode, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// classifyStatus maps a non-2xx status to an error class.
func classifyStatus(status int) ErrorClass {
	if status >= 500 {
		return ErrorClassServer
	}
	return ErrorClassClient
}
