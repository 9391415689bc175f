package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoSession is returned when a protected call is attempted without a
// stored token. No network request is issued.
var ErrNoSession = errors.New("no stored session")

// Error is a non-2xx API response. Detail carries the server-provided
// message when the body had one.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// StatusOf returns the HTTP status of an API error, or 0 for transport and
// local errors.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsUnauthorized reports an authorization failure (401).
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// IsNotFound reports a 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// IsBadRequest reports a 400.
func IsBadRequest(err error) bool {
	return StatusOf(err) == http.StatusBadRequest
}

// Detail returns the server-provided message, if any.
func Detail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

// UserMessage maps an error to the message shown to the operator.
// Validation messages are produced earlier, by the form layer.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoSession):
		return "You must sign in first."
	case IsUnauthorized(err):
		return "Your session has expired. Please sign in again."
	case IsNotFound(err):
		return "The item no longer exists."
	default:
		if d := Detail(err); d != "" {
			return "Something went wrong: " + d
		}
		return "Something went wrong. Please try again."
	}
}
