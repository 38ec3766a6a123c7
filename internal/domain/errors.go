package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrValidation   = errors.New("validation failed")
	ErrStorage      = errors.New("storage failure")
	ErrSearchFailed = errors.New("failed to search folders")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// ValidationError indicates invalid input, rejected before any store access
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string   { return e.Message }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Is allows errors.Is() to match against ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// SearchError reports a failed folder search. Its message is always the
// generic ErrSearchFailed text; the underlying cause is only reachable
// through Unwrap so it can be logged without being exposed to callers.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string   { return ErrSearchFailed.Error() }
func (e *SearchError) Unwrap() error   { return e.Err }
func (e *SearchError) StatusCode() int { return http.StatusInternalServerError }

// Is allows errors.Is() to match against ErrSearchFailed
func (e *SearchError) Is(target error) bool {
	return target == ErrSearchFailed
}
