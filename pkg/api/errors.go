package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse marks a response body whose shape the client does not
// recognize (neither a bare array nor a {"results": [...]} envelope, or not
// valid JSON at all). The client fails closed rather than guessing.
var ErrMalformedResponse = errors.New("malformed response from backend")

// RequestError means the request could not be sent or completed at all:
// DNS failure, refused connection, timeout. There is no HTTP status to report.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError is a completed request that the backend rejected with a
// non-2xx status. Detail carries the backend's "detail" message when the
// error body had one.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d %s: %s", e.Status, http.StatusText(e.Status), e.Detail)
	}
	return fmt.Sprintf("backend returned %d %s", e.Status, http.StatusText(e.Status))
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401/403 from the backend,
// typically an expired or missing token.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && (se.Status == http.StatusUnauthorized || se.Status == http.StatusForbidden)
}
