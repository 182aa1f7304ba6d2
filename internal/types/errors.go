package types

import (
	"errors"
	"fmt"
)

// Every lookup failure wraps exactly one of these
var (
	ErrTransport        = errors.New("upstream request failed")
	ErrDecode           = errors.New("upstream response could not be decoded")
	ErrEmptyResult      = errors.New("upstream returned no data")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrUpstreamStatus   = errors.New("upstream returned an error status")
)

// UpstreamError carries what an upstream said when it refused a request
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstreamStatus
}

// TransportError wraps the network failure behind ErrTransport
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// MissingParameterError names the query parameter that was absent
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Param)
}

func (e *MissingParameterError) Unwrap() error {
	return ErrMissingParameter
}
