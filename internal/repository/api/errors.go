package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound wraps any 404 so callers can branch without string
	// matching.
	ErrNotFound = errors.New("resource not found")

	// ErrTokenExpired is returned before a request is even issued when
	// the configured bearer token's exp claim has passed.
	ErrTokenExpired = errors.New("auth token expired, log in again")
)

// StatusError carries the backend's status and body for non-2xx replies.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

func newStatusError(method, path string, status int, body []byte) error {
	return &StatusError{Method: method, Path: path, Status: status, Body: string(body)}
}
