package reverso

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is wrapped in a ParseError when the service answered without any translation.
var ErrEmptyResult = errors.New("empty translation result")

// FetchError reports a transport failure or a non-2xx response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// retryable reports whether another attempt could succeed.
func (e *FetchError) retryable() bool {
	return e.Err != nil || e.StatusCode == 429 || e.StatusCode >= 500
}

// ParseError reports a payload that could not be decoded.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
